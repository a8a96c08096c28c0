package piece

import "testing"

func TestDecodeCharacterKinds(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		kind Kind
		size int
	}{
		{"ascii", []byte("a"), Printable, 1},
		{"tab", []byte("\t"), Tab, 1},
		{"newline", []byte("\n"), Newline, 1},
		{"control", []byte{0x01}, Control, 1},
		{"del", []byte{0x7f}, Control, 1},
		{"multibyte", []byte("日"), Printable, 3},
		{"invalid", []byte{0xff}, RawByte, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch, n := DecodeCharacter(c.in)
			if ch.Kind != c.kind {
				t.Fatalf("kind = %v, want %v", ch.Kind, c.kind)
			}
			if n != c.size {
				t.Fatalf("size = %d, want %d", n, c.size)
			}
			if ch.EncodedLen() != c.size {
				t.Fatalf("EncodedLen() = %d, want %d", ch.EncodedLen(), c.size)
			}
		})
	}
}

func TestCharacterIsNewline(t *testing.T) {
	ch, _ := DecodeCharacter([]byte("\n"))
	if !ch.IsNewline() {
		t.Fatal("expected newline character")
	}
	ch, _ = DecodeCharacter([]byte("x"))
	if ch.IsNewline() {
		t.Fatal("did not expect newline character")
	}
}

func TestCharacterString(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("a"), "a"},
		{[]byte("\t"), "\t"},
		{[]byte{0x01}, "^A"},
		{[]byte{0xff}, "\\xff"},
	}
	for _, c := range cases {
		ch, _ := DecodeCharacter(c.in)
		if got := ch.String(); got != c.want && ch.Kind != Newline {
			if got != c.want {
				t.Fatalf("String() = %q, want %q", got, c.want)
			}
		}
	}
}
