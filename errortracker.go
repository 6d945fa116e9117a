package scriptrunner

import "sync"

// errorTracker accumulates errors from the goroutines of one run.
type errorTracker struct {
	m    sync.Mutex
	errs []*RunError
}

func (et *errorTracker) log(err *RunError) {
	if err == nil {
		return
	}
	et.m.Lock()
	et.errs = append(et.errs, err)
	et.m.Unlock()
}

// worst returns the first error logged of the first listed kind that has
// any errors at all, or nil.
func (et *errorTracker) worst(kinds ...error) error {
	et.m.Lock()
	defer et.m.Unlock()
	for _, k := range kinds {
		for _, err := range et.errs {
			if err.Kind == k {
				return err
			}
		}
	}
	return nil
}

func (et *errorTracker) count() int {
	et.m.Lock()
	defer et.m.Unlock()
	return len(et.errs)
}
