package journal

import "strconv"

const (
	idSuffixLen = 9
	base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewID returns the epoch milliseconds followed by nine random base36
// characters.
func (s *Service) NewID() string {
	buf := make([]byte, 0, 13+idSuffixLen)
	buf = strconv.AppendInt(buf, s.now().UnixMilli(), 10)

	s.randMu.Lock()
	defer s.randMu.Unlock()
	for range idSuffixLen {
		buf = append(buf, base36[s.rand.IntN(len(base36))])
	}
	return string(buf)
}
