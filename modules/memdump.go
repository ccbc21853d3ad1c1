package modules

import (
	"context"
	"strings"

	"genact/internal/session"
)

// Memdump prints a hex dump of random memory.
type Memdump struct{}

func (Memdump) Name() string      { return "memdump" }
func (Memdump) Signature() string { return "xxd /dev/mem" }

const memdumpRow = 16

func (Memdump) Run(ctx context.Context, s *session.Session) error {
	addr := uint64(s.Rand.Uint32()) &^ 0xf
	rows := s.Between(100, 1000)
	row := make([]byte, memdumpRow)

	for i := 0; i < rows; i++ {
		for j := range row {
			row[j] = byte(s.Rand.UintN(256))
		}
		if err := s.Println(hexRow(addr, row)); err != nil {
			return err
		}
		addr += memdumpRow
		if stop, err := pause(ctx, s, s.Millis(1, 20)); stop {
			return err
		}
	}
	return nil
}

// hexRow renders one xxd-style row: address, grouped hex, printable ascii.
func hexRow(addr uint64, row []byte) string {
	const digits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(80)

	for shift := 28; shift >= 0; shift -= 4 {
		b.WriteByte(digits[(addr>>uint(shift))&0xf])
	}
	b.WriteString(":")
	for i, c := range row {
		if i%2 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[c>>4])
		b.WriteByte(digits[c&0xf])
	}
	b.WriteString("  ")
	for _, c := range row {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		b.WriteByte(c)
	}
	return b.String()
}
