package countries

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type RegistrySuite struct {
	suite.Suite
	reg *Registry
	sk  Country
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.reg = NewRegistry(WithLogger(zaptest.NewLogger(s.T())))

	var err error
	s.sk, err = s.reg.Register("Slovakia", "SK", "SVK", "703", Europe)
	s.Require().NoError(err)
	_, err = s.reg.Register("Afghanistan", "AF", "AFG", "004", Asia)
	s.Require().NoError(err)
}

func (s *RegistrySuite) TestRegisterDefaults() {
	s.Equal("Slovakia", s.sk.Name())
	s.Equal("SK", s.sk.Alpha2())
	s.Equal("SVK", s.sk.Alpha3())
	s.Equal("703", s.sk.Numeric())
	s.Equal(703, s.sk.NumericInt())
	s.Equal(Europe, s.sk.Continent())
	s.Equal(OfficiallyAssigned, s.sk.CodeType())
	s.Equal(2, s.reg.Len())
}

func (s *RegistrySuite) TestRegisterValidation() {
	tests := []struct {
		name      string
		country   [4]string
		continent Continent
		codeType  CodeType
		code      Code
	}{
		{"empty name", [4]string{"", "XA", "XAA", "900"}, Europe, UserAssigned, CodeInvalidArgument},
		{"blank name", [4]string{"  ", "XA", "XAA", "900"}, Europe, UserAssigned, CodeInvalidArgument},
		{"lowercase alpha2", [4]string{"Testland", "xa", "XAA", "900"}, Europe, UserAssigned, CodeInvalidFormat},
		{"long alpha2", [4]string{"Testland", "XAA", "XAA", "900"}, Europe, UserAssigned, CodeInvalidFormat},
		{"short alpha3", [4]string{"Testland", "XA", "XA", "900"}, Europe, UserAssigned, CodeInvalidFormat},
		{"digit in alpha3", [4]string{"Testland", "XA", "XA1", "900"}, Europe, UserAssigned, CodeInvalidFormat},
		{"unpadded numeric", [4]string{"Testland", "XA", "XAA", "90"}, Europe, UserAssigned, CodeInvalidFormat},
		{"alpha numeric", [4]string{"Testland", "XA", "XAA", "9A0"}, Europe, UserAssigned, CodeInvalidFormat},
		{"unknown continent", [4]string{"Testland", "XA", "XAA", "900"}, Continent(9), UserAssigned, CodeInvalidArgument},
		{"unknown code type", [4]string{"Testland", "XA", "XAA", "900"}, Europe, CodeType(9), CodeInvalidArgument},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.reg.Register(tc.country[0], tc.country[1], tc.country[2], tc.country[3], tc.continent, tc.codeType)
			s.Require().Error(err)
			s.True(HasCode(err, tc.code), "got %v", err)
			s.Equal(2, s.reg.Len())
		})
	}
}

func (s *RegistrySuite) TestRegisterIdenticalIsNoop() {
	again, err := s.reg.Register("Slovakia", "SK", "SVK", "703", Europe)
	s.Require().NoError(err)
	s.Equal(s.sk, again)
	s.Equal(2, s.reg.Len())
}

func (s *RegistrySuite) TestRegisterConflicts() {
	tests := []struct {
		name    string
		country [4]string
		ct      CodeType
		key     string
	}{
		{"numeric code", [4]string{"Slovak Republic", "SR", "SRR", "703"}, OfficiallyAssigned, "numeric code"},
		{"three-letter code", [4]string{"Slovak Republic", "SR", "SVK", "999"}, OfficiallyAssigned, "three-letter code"},
		{"two-letter code", [4]string{"Slovak Republic", "SK", "SRR", "999"}, OfficiallyAssigned, "two-letter code"},
		{"name", [4]string{"Slovakia", "SR", "SRR", "999"}, OfficiallyAssigned, "name"},
		{"same codes other status", [4]string{"Slovakia", "SK", "SVK", "703"}, UserAssigned, "numeric code"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.reg.Register(tc.country[0], tc.country[1], tc.country[2], tc.country[3], Europe, tc.ct)
			s.Require().Error(err)
			s.True(errors.Is(err, ErrDuplicateKey))

			var regErr *Error
			s.Require().True(errors.As(err, &regErr))
			s.Equal(tc.key, regErr.Key)
			s.Equal(2, s.reg.Len())
		})
	}
}

func (s *RegistrySuite) TestConflictLeavesIndicesIntact() {
	_, err := s.reg.Register("Slovak Republic", "SR", "SRR", "703", Europe)
	s.Require().Error(err)

	_, ok := s.reg.LookupAlpha2("SR")
	s.False(ok)
	_, ok = s.reg.LookupAlpha3("SRR")
	s.False(ok)
	_, ok = s.reg.LookupName("Slovak Republic")
	s.False(ok)

	got, ok := s.reg.LookupNumeric("703")
	s.True(ok)
	s.Equal(s.sk, got)
}

func (s *RegistrySuite) TestLookups() {
	for _, code := range []string{"SK", "sk", "sK"} {
		got, ok := s.reg.LookupAlpha2(code)
		s.True(ok, code)
		s.Equal(s.sk, got)
	}
	for _, code := range []string{"SVK", "svk"} {
		got, ok := s.reg.LookupAlpha3(code)
		s.True(ok, code)
		s.Equal(s.sk, got)
	}

	got, ok := s.reg.LookupNumericInt(703)
	s.True(ok)
	s.Equal(s.sk, got)

	_, ok = s.reg.LookupName("SLOVAKIA")
	s.False(ok)
}

func (s *RegistrySuite) TestLookupsFoldASCIIOnly() {
	// U+017F folds to 'S' under Unicode rules.
	for _, code := range []string{"\u017fk", "\u017fK"} {
		_, ok := s.reg.LookupAlpha2(code)
		s.False(ok, code)

		_, ok, err := s.reg.LookupCode(code)
		s.NoError(err)
		s.False(ok, code)
	}

	_, ok := s.reg.LookupAlpha3("\u017fvk")
	s.False(ok)
	_, ok = s.reg.LookupAlpha3("SV\u212a")
	s.False(ok)
}

func (s *RegistrySuite) TestGetByNumeric() {
	af, err := s.reg.GetByNumeric(4)
	s.Require().NoError(err)
	s.Equal("AF", af.Alpha2())

	_, err = s.reg.GetByNumeric(5)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrNotFound))
	s.Contains(err.Error(), `"5"`)
}

func (s *RegistrySuite) TestGetByNumericString() {
	af, err := s.reg.GetByNumericString("004")
	s.Require().NoError(err)
	s.Equal("AF", af.Alpha2())

	_, err = s.reg.GetByNumericString("4")
	s.True(HasCode(err, CodeInvalidFormat))

	_, err = s.reg.GetByNumericString("000")
	s.True(HasCode(err, CodeNotFound))
}

func (s *RegistrySuite) TestLookupCode() {
	for _, code := range []string{"SK", "SVK", "svk"} {
		got, ok, err := s.reg.LookupCode(code)
		s.Require().NoError(err)
		s.True(ok, code)
		s.Equal(s.sk, got)
	}

	_, ok, err := s.reg.LookupCode("XX")
	s.NoError(err)
	s.False(ok)

	for _, code := range []string{"SVKX", "S", ""} {
		_, ok, err := s.reg.LookupCode(code)
		s.False(ok)
		s.True(errors.Is(err, ErrInvalidFormat), code)
	}
}

func (s *RegistrySuite) TestEqualityByNumericCode() {
	other := NewRegistry()
	renamed, err := other.Register("Slovak Republic", "SR", "SRR", "703", Asia, UserAssigned)
	s.Require().NoError(err)

	s.True(s.sk.Equal(renamed))
	s.NotEqual(s.sk, renamed)

	af, _ := s.reg.LookupAlpha2("AF")
	s.False(s.sk.Equal(af))
}

func (s *RegistrySuite) TestCompare() {
	af, _ := s.reg.LookupAlpha2("AF")
	s.Negative(af.Compare(s.sk))
	s.Positive(s.sk.Compare(af))
	s.Zero(s.sk.Compare(s.sk))

	all := s.reg.All()
	s.Equal("SK", all[0].Alpha2())
	SortByAlpha2(all)
	s.Equal([]string{"AF", "SK"}, []string{all[0].Alpha2(), all[1].Alpha2()})
}

func (s *RegistrySuite) TestFilter() {
	europe := s.reg.ByContinent(Europe)
	s.Len(europe, 1)
	s.Equal(s.sk, europe[0])

	s.Empty(s.reg.ByCodeType(UserAssigned))
	s.Len(s.reg.Filter(func(Country) bool { return true }), 2)
}

func (s *RegistrySuite) TestConcurrentRegistration() {
	const goroutines = 32
	reg := NewRegistry()

	var wg sync.WaitGroup
	results := make([]Country, goroutines)
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = reg.Register("Slovakia", "SK", "SVK", "703", Europe)
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		s.NoError(errs[i])
		s.Equal("SVK", results[i].Alpha3())
	}
	s.Equal(1, reg.Len())
}

func (s *RegistrySuite) TestConcurrentReadersDuringWrites() {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, err := reg.Register(fmt.Sprintf("Land %03d", n), fmt.Sprintf("X%c", 'A'+n%26), fmt.Sprintf("X%c%c", 'A'+n/26, 'A'+n%26), fmt.Sprintf("%03d", 900+n%100), Europe, UserAssigned)
			_ = err // two-letter codes repeat every 26 rows
		}(i)
		go func(n int) {
			defer wg.Done()
			if c, ok := reg.LookupNumericInt(900 + n%100); ok {
				s.Equal(fmt.Sprintf("%03d", 900+n%100), c.Numeric())
			}
			for _, c := range reg.All() {
				s.False(c.IsZero())
			}
		}(i)
	}
	wg.Wait()

	s.Equal(26, reg.Len())
}
