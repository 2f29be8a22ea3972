package slippi

// StateFlags is a Post frame's 5-byte state-flag block, modeled as five
// independent bitfields per spec.md §9's design note ("model as an array of
// five distinct bitflag types rather than one 40-bit integer"), rather than
// original_source/slippi/event.py's single 40-bit StateFlags IntFlag. Bit
// positions below are derived from that 40-bit table by byte_index = bit //
// 8, offset_in_byte = bit % 8.
type StateFlags [5]byte

// Field1 .. Field5 access each byte directly when a caller wants to test an
// undocumented bit.
func (f StateFlags) Field1() byte { return f[0] }
func (f StateFlags) Field2() byte { return f[1] }
func (f StateFlags) Field3() byte { return f[2] }
func (f StateFlags) Field4() byte { return f[3] }
func (f StateFlags) Field5() byte { return f[4] }

// Reflecting is bit 4 (byte 0, offset 4).
func (f StateFlags) Reflecting() bool { return f[0]&(1<<4) != 0 }

// Untouchable is bit 10 (byte 1, offset 2).
func (f StateFlags) Untouchable() bool { return f[1]&(1<<2) != 0 }

// FastFalling is bit 11 (byte 1, offset 3).
func (f StateFlags) FastFalling() bool { return f[1]&(1<<3) != 0 }

// InHitlag is bit 13 (byte 1, offset 5).
func (f StateFlags) InHitlag() bool { return f[1]&(1<<5) != 0 }

// Shielding is bit 23 (byte 2, offset 7).
func (f StateFlags) Shielding() bool { return f[2]&(1<<7) != 0 }

// InHitstun is bit 25 (byte 3, offset 1).
func (f StateFlags) InHitstun() bool { return f[3]&(1<<1) != 0 }

// ShieldTouched is bit 26 (byte 3, offset 2).
func (f StateFlags) ShieldTouched() bool { return f[3]&(1<<2) != 0 }

// PowerShield is bit 29 (byte 3, offset 5).
func (f StateFlags) PowerShield() bool { return f[3]&(1<<5) != 0 }

// IsFollower is bit 35 (byte 4, offset 3).
func (f StateFlags) IsFollower() bool { return f[4]&(1<<3) != 0 }

// Sleeping is bit 36 (byte 4, offset 4).
func (f StateFlags) Sleeping() bool { return f[4]&(1<<4) != 0 }

// Dead is bit 38 (byte 4, offset 6).
func (f StateFlags) Dead() bool { return f[4]&(1<<6) != 0 }

// OffScreen is bit 39 (byte 4, offset 7).
func (f StateFlags) OffScreen() bool { return f[4]&(1<<7) != 0 }
