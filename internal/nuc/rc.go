// internal/nuc/rc.go
package nuc

// Gap marks an inserted position in a gapped sequence.
const Gap byte = '-'

var complement [256]byte

func init() {
	complement['A'] = 'T'; complement['C'] = 'G'; complement['G'] = 'C'; complement['T'] = 'A'
	complement['R'] = 'Y'; complement['Y'] = 'R'
	complement['S'] = 'S'; complement['W'] = 'W'
	complement['K'] = 'M'; complement['M'] = 'K'
	complement['B'] = 'V'; complement['V'] = 'B'
	complement['D'] = 'H'; complement['H'] = 'D'
	complement['N'] = 'N'
	complement[Gap] = Gap
	complement['*'] = '*'
	for _, b := range []byte("ACGTRYSWKMBVDHN") {
		complement[b+('a'-'A')] = complement[b] + ('a' - 'A')
	}
}

// RevComp returns the reverse complement of seq. Unknown bytes become 'N';
// gaps stay gaps.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
