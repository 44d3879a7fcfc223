package validate

import "regexp"

var (
	upiRe  = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,}@[a-zA-Z]{2,}$`)
	ifscRe = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	acctRe = regexp.MustCompile(`^[0-9]{9,18}$`)
)

func IsUPI(s string) bool {
	return upiRe.MatchString(s)
}

func IsIFSC(s string) bool {
	return ifscRe.MatchString(s)
}

func IsBankAccountNumber(s string) bool {
	return acctRe.MatchString(s)
}
