package ines

func getBit(v uint8, n uint) bool {
	return v>>n&0x01 != 0
}

func setBit(v *uint8, n uint, on bool) {
	if on {
		*v |= 1 << n
	} else {
		*v &^= 1 << n
	}
}

func lo(v uint8) uint8 { return v & 0x0F }
func hi(v uint8) uint8 { return v >> 4 }

// nibbles packs l in the low nibble and h in the high nibble.
func nibbles(l, h uint8) uint8 {
	return l&0x0F | h<<4
}
