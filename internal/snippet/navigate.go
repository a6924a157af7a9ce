package snippet

// Next moves the cursor to the next field in template order. Past the last
// field it moves to the exit position and retires the instance; from then
// on edits are ordinary untracked text edits.
func (e *Engine) Next() error {
	inst := e.active
	if inst == nil {
		return ErrNoInstance
	}

	if inst.current+1 < len(inst.fields) {
		inst.current++
		start, _, err := e.surface.SpanRange(inst.fields[inst.current].span)
		if err != nil {
			return err
		}
		return e.surface.SetPosition(start)
	}

	exitPos, _, err := e.surface.SpanRange(inst.exit)
	if err != nil {
		return err
	}
	if err := e.surface.SetPosition(exitPos); err != nil {
		return err
	}
	e.teardown()
	return nil
}

// Prev moves the cursor to the previous field in template order, clamping
// at the first field.
func (e *Engine) Prev() error {
	inst := e.active
	if inst == nil {
		return ErrNoInstance
	}
	if len(inst.fields) == 0 {
		return nil
	}

	if inst.current > 0 {
		inst.current--
	} else {
		inst.current = 0
	}

	start, _, err := e.surface.SpanRange(inst.fields[inst.current].span)
	if err != nil {
		return err
	}
	return e.surface.SetPosition(start)
}
