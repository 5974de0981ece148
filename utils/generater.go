package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

// BookingReference returns a human-readable reference like BK202503011030051234.
// The random tail keeps two bookings created in the same second distinct.
func BookingReference() string {
	return fmt.Sprintf("BK%s%s", time.Now().Format("20060102150405"), randomDigits())
}

// TransactionID returns a payment transaction id like TX202503011030051234.
func TransactionID() string {
	return fmt.Sprintf("TX%s%s", time.Now().Format("20060102150405"), randomDigits())
}

func randomDigits() string {
	var b [2]byte
	rand.Read(b[:])
	return fmt.Sprintf("%04d", (int(b[0])<<8|int(b[1]))%10000)
}
