// Copyright 2024 Snowfork
// SPDX-License-Identifier: LGPL-3.0-only

package strkey

import "encoding/binary"

const ChecksumLength = 2

// crc16Table is the lookup table for CRC-16/XMODEM (poly 0x1021, init 0).
var crc16Table = func() [256]uint16 {
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}()

func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = crc<<8 ^ crc16Table[byte(crc>>8)^b]
	}
	return crc
}

// Checksum returns the CRC-16/XMODEM of data, little-endian.
func Checksum(data []byte) [ChecksumLength]byte {
	var out [ChecksumLength]byte
	binary.LittleEndian.PutUint16(out[:], crc16(data))
	return out
}
