package wavefront

import (
	"strconv"
)

// Parse a float token. Only plain decimal and scientific notation is
// accepted; strconv extensions such as "inf", "nan", hex floats and digit
// separators are rejected.
func parseFloat(ln *line, token string) (float32, error) {
	if !isDecimalFloat(token) {
		return 0, newError(InvalidNumber, ln, token, "")
	}

	val, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, newError(InvalidNumber, ln, token, "%s", err.(*strconv.NumError).Err)
	}
	return float32(val), nil
}

// Parse an integer token with an optional sign.
func parseInt(ln *line, token string) (int, error) {
	if !isDecimalInt(token) {
		return 0, newError(InvalidNumber, ln, token, "")
	}

	val, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, newError(InvalidNumber, ln, token, "%s", err.(*strconv.NumError).Err)
	}
	return int(val), nil
}

// Parse between minCount and maxCount float values from the line values.
func parseFloats(ln *line, minCount, maxCount int) ([]float32, error) {
	if err := checkValueCount(ln, minCount, maxCount); err != nil {
		return nil, err
	}

	out := make([]float32, len(ln.values))
	for idx, token := range ln.values {
		val, err := parseFloat(ln, token)
		if err != nil {
			return nil, err
		}
		out[idx] = val
	}
	return out, nil
}

// Ensure that the number of line values is within [minCount, maxCount]. A
// negative maxCount means that there is no upper limit.
func checkValueCount(ln *line, minCount, maxCount int) error {
	if len(ln.values) < minCount {
		return newError(MissingRequiredValue, ln, "", "expected at least %d value(s); got %d", minCount, len(ln.values))
	}
	if maxCount >= 0 && len(ln.values) > maxCount {
		return newError(TooManyValues, ln, ln.values[maxCount], "expected at most %d value(s); got %d", maxCount, len(ln.values))
	}
	return nil
}

// Parse an on/off flag.
func parseOnOff(ln *line, token string) (bool, error) {
	switch token {
	case "on", "1":
		return true, nil
	case "off", "0":
		return false, nil
	}
	return false, newError(InvalidValue, ln, token, `expected "on" or "off"`)
}

func isDecimalInt(token string) bool {
	idx := skipSign(token, 0)
	return idx < len(token) && skipDigits(token, idx) == len(token)
}

func isDecimalFloat(token string) bool {
	idx := skipSign(token, 0)

	intEnd := skipDigits(token, idx)
	hasInt := intEnd > idx
	idx = intEnd

	hasFrac := false
	if idx < len(token) && token[idx] == '.' {
		fracEnd := skipDigits(token, idx+1)
		hasFrac = fracEnd > idx+1
		idx = fracEnd
	}

	if !hasInt && !hasFrac {
		return false
	}

	if idx < len(token) && (token[idx] == 'e' || token[idx] == 'E') {
		expStart := skipSign(token, idx+1)
		expEnd := skipDigits(token, expStart)
		if expEnd == expStart {
			return false
		}
		idx = expEnd
	}

	return idx == len(token)
}

func skipSign(token string, idx int) int {
	if idx < len(token) && (token[idx] == '+' || token[idx] == '-') {
		return idx + 1
	}
	return idx
}

func skipDigits(token string, idx int) int {
	for idx < len(token) && token[idx] >= '0' && token[idx] <= '9' {
		idx++
	}
	return idx
}
