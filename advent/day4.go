package advent

import (
	"crypto/md5"
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
}

func day4a(input string) (int, error) {
	return MineAdventCoin(strings.TrimSpace(input), 5)
}

func day4b(input string) (int, error) {
	return MineAdventCoin(strings.TrimSpace(input), 6)
}

// MineAdventCoin finds the lowest non-negative number n such that the hex
// MD5 digest of key followed by n in decimal starts with the given number
// of zeros.
func MineAdventCoin(key string, zeros int) (int, error) {
	if zeros < 0 || zeros > 2*md5.Size {
		return 0, fmt.Errorf("cannot require %d leading zeros", zeros)
	}
	buf := []byte(key)
	for n := int64(0); n <= math.MaxUint32; n++ {
		b := strconv.AppendInt(buf, n, 10)
		if leadingZeros(md5.Sum(b), zeros) {
			log.WithField("key", key).Debugf("mined AdventCoin %d", n)
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("no AdventCoin for key %q", key)
}

// leadingZeros reports whether the first n hex digits of sum are zero.
func leadingZeros(sum [md5.Size]byte, n int) bool {
	for i := 0; i < n/2; i++ {
		if sum[i] != 0 {
			return false
		}
	}
	if n%2 == 1 {
		return sum[n/2]>>4 == 0
	}
	return true
}
