package argsparser

import "reflect"

// accept runs a raw value given for d through validation, the callback and
// conversion, and records the outcome. A non-nil error aborts the parse.
// Repeated arguments keep the values accepted earlier in the pass.
func (ps *pass) accept(d *Descriptor, raw string) error {
	st := ps.res.state(d.token)
	prev := *st
	*st = argState{
		raw:      raw,
		hasRaw:   true,
		supplied: true,
	}
	if d.repeated && prev.supplied {
		st.value, st.hasValue = prev.value, prev.hasValue
	}
	valid := true
	if d.validate != nil {
		err := d.validate.call(raw)
		if err == nil {
			st.validation.Status = Passed
		} else {
			valid = false
			st.validation = Validation{Status: Failed, Reason: err.Error()}
			err = ps.fail(d, &Failure{Token: d.token, Kind: ValidationFailed, Arg: raw, Err: err})
			if err != nil {
				return err
			}
		}
	}
	if d.callback != nil {
		d.callback()
	}
	if !valid {
		return nil
	}
	var v interface{} = raw
	if d.convert != nil {
		var err error
		v, err = d.convert.call(raw)
		if err != nil {
			return ps.fail(d, &Failure{Token: d.token, Kind: ConversionFailed, Arg: raw, Err: err})
		}
	}
	if d.repeated {
		v = appendValue(st.value, v)
	}
	st.value, st.hasValue = v, true
	return nil
}

// appendValue appends v to list, a slice of v's type. A nil list starts a new
// slice.
func appendValue(list, v interface{}) interface{} {
	rv := reflect.ValueOf(&v).Elem()
	if v != nil {
		rv = rv.Elem()
	}
	l := reflect.ValueOf(list)
	if list == nil {
		l = reflect.MakeSlice(reflect.SliceOf(rv.Type()), 0, 1)
	}
	return reflect.Append(l, rv).Interface()
}

// fail routes f to the critical abort, d's error handler, or the failure list
// in that order of precedence. d is nil for arguments that matched nothing.
func (ps *pass) fail(d *Descriptor, f *Failure) error {
	if ps.critical || (d != nil && d.critical) {
		ps.logger.Debug("aborting parse", "token", f.Token, "failure", f)
		ps.res.Failures = append(ps.res.Failures, f)
		return f
	}
	if d != nil && d.onError != nil {
		ps.logger.Debug("handing failure to error handler", "token", f.Token, "failure", f)
		d.onError(f)
		return nil
	}
	ps.logger.Debug("recording failure", "token", f.Token, "failure", f)
	ps.res.Failures = append(ps.res.Failures, f)
	return nil
}
