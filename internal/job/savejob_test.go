package job

import (
	"testing"
	"time"

	"github.com/ehrlich-b/wtedit/internal/interfaces"
)

func TestSaveJobWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/doc.txt"
	fs := interfaces.NewOSFileSystem()

	m := NewManager(16)
	id := m.Spawn(&SaveJob{DocumentID: "d1", Bytes: []byte("hello world"), Path: path, Revision: 3, FS: fs})

	var msgs []Message
	deadline := time.Now().Add(2 * time.Second)
	for len(msgs) < 2 && time.Now().Before(deadline) {
		msgs = append(msgs, m.Poll(10)...)
		time.Sleep(time.Millisecond)
	}
	if len(msgs) < 2 {
		t.Fatalf("got %d messages, want 2 (Custom + Finished)", len(msgs))
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("file contents = %q", data)
	}

	var sawResult bool
	for _, msg := range msgs {
		if r, ok := msg.Payload.(SaveResult); ok {
			sawResult = true
			if r.Revision != 3 || r.Path != path {
				t.Fatalf("SaveResult = %+v", r)
			}
		}
	}
	if !sawResult {
		t.Fatal("expected a Custom message carrying SaveResult")
	}
	_ = id
}

func TestLoadJobReadsAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/doc.txt"
	fs := interfaces.NewOSFileSystem()
	if err := fs.WriteFile(path, []byte("a\r\nb\r\nc"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(16)
	m.Spawn(&LoadJob{DocumentID: "d1", Path: path, FS: fs})

	var msgs []Message
	deadline := time.Now().Add(2 * time.Second)
	for len(msgs) < 2 && time.Now().Before(deadline) {
		msgs = append(msgs, m.Poll(10)...)
		time.Sleep(time.Millisecond)
	}

	var result LoadResult
	var found bool
	for _, msg := range msgs {
		if r, ok := msg.Payload.(LoadResult); ok {
			result = r
			found = true
		}
	}
	if !found {
		t.Fatal("expected a Custom message carrying LoadResult")
	}
	if string(result.Normalized) != "a\nb\nc" {
		t.Fatalf("Normalized = %q", result.Normalized)
	}
}
