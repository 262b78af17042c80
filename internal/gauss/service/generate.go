package service

import (
	"math"
	"math/rand"
	"strconv"

	mdwerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/utils/timex"
)

// ===============================
// Order message fields
// ===============================

// GenerateTransactTime returns the modified current UTC date-time for a
// TransactTime field
func (s *Service) GenerateTransactTime(pattern string) (timex.Temporal, error) {
	return s.GetDateTime(pattern)
}

// GenerateClOrdID returns the current Unix milliseconds plus a per-service
// sequence starting at 1, in decimal. IDs generated within one
// millisecond stay distinct.
func (s *Service) GenerateClOrdID() string {
	return strconv.FormatInt(s.clock.Now().UnixMilli()+s.clOrdSeq.Add(1), 10)
}

// GenerateHexString returns the IEEE 754 bits of a random float in [0, 1)
// in lower-case hex without leading zeros
func (s *Service) GenerateHexString() string {
	return strconv.FormatUint(math.Float64bits(rand.Float64()), 16)
}

// GenerateInteger returns a random integer in [0, bound)
func (s *Service) GenerateInteger(bound int64) (int64, error) {
	if bound <= 0 {
		return 0, mdwerror.Newf("bound must be positive, got %d", bound).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("service.GenerateInteger").
			WithDetail("bound", bound)
	}
	return rand.Int63n(bound), nil
}
