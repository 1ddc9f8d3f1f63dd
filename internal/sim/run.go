package sim

// RunResult summarizes a headless run.
type RunResult struct {
	Steps  int
	Exits  []ExitRecord // Exits produced during this run, in order
	Status Status
	Capped bool // The step limit was reached while still rolling
}

// Run steps until the marble stops or maxSteps is reached.
// A maxSteps <= 0 means no limit; every recycle consumes a marble, so an
// unlimited run always ends.
func (s *Session) Run(maxSteps int) RunResult {
	var result RunResult
	for s.status == Rolling && s.ball != nil {
		if maxSteps > 0 && result.Steps >= maxSteps {
			result.Capped = true
			break
		}
		r := s.Step()
		if r.Moved {
			result.Steps++
		}
		if r.Exited != nil {
			result.Exits = append(result.Exits, *r.Exited)
		}
	}
	result.Status = s.status
	return result
}

// Sequence returns the colours of exits as a string of 'b' and 'r'.
func Sequence(exits []ExitRecord) string {
	buf := make([]byte, len(exits))
	for i, e := range exits {
		if e.Color == Red {
			buf[i] = 'r'
		} else {
			buf[i] = 'b'
		}
	}
	return string(buf)
}
