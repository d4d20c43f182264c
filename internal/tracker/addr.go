package tracker

import "fmt"

// Addr is a 48-bit hardware address packed into a uint64.
// The high 16 bits are always zero.
type Addr uint64

// AddrFromBytes packs 6 raw address bytes (transmission order) into an Addr.
func AddrFromBytes(b [6]byte) Addr {
	return Addr(uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5]))
}

// ParseAddr parses an "AA:BB:CC:DD:EE:FF" string (case-insensitive).
// Returns false for anything that is not exactly six colon-separated octets.
func ParseAddr(s string) (Addr, bool) {
	if len(s) != 17 {
		return 0, false
	}
	var v uint64
	for i, c := range s {
		if (i+1)%3 == 0 {
			if c != ':' {
				return 0, false
			}
			continue
		}
		var nib uint64
		switch {
		case c >= '0' && c <= '9':
			nib = uint64(c - '0')
		case c >= 'A' && c <= 'F':
			nib = uint64(c-'A') + 10
		case c >= 'a' && c <= 'f':
			nib = uint64(c-'a') + 10
		default:
			return 0, false
		}
		v = v<<4 | nib
	}
	return Addr(v), true
}

// String renders the address as uppercase colon-separated hex,
// two digits per byte. This exact format appears in operator log lines.
func (a Addr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		byte(a>>40), byte(a>>32), byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// OUI returns the organizationally unique identifier (the first 3 bytes).
func (a Addr) OUI() uint32 {
	return uint32(a >> 24)
}

// fold XORs the high and low 32-bit halves to derive the hash value.
func (a Addr) fold() uint32 {
	return uint32(a>>32) ^ uint32(a)
}
