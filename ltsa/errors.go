package ltsa

import "errors"

// ErrMalformed is returned when the input does not follow the LTSA
// format described in doc.go closely enough to parse (a missing
// num_states line, an unparsable state-count, or a state block whose
// target index is not a "Qn" token).
var ErrMalformed = errors.New("ltsa: malformed input")
