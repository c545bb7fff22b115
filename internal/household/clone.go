package household

// Deep-copy helpers applied at every store boundary. Entities handed out of
// (or taken into) the State never share slices or maps with stored records,
// which is what keeps run input snapshots immune to later ritual edits and
// activity log entries immutable once appended.

func cloneInputs(inputs []Input) []Input {
	out := make([]Input, len(inputs))
	copy(out, inputs)
	return out
}

func cloneActivityLog(log []ActivityEntry) []ActivityEntry {
	out := make([]ActivityEntry, len(log))
	for i, e := range log {
		e.Metadata = cloneStringMap(e.Metadata)
		out[i] = e
	}
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneRun(r *Run) *Run {
	out := *r
	out.Inputs = cloneInputs(r.Inputs)
	out.ActivityLog = cloneActivityLog(r.ActivityLog)
	return &out
}

func cloneRitual(r *Ritual) *Ritual {
	out := *r
	if r.Cadence != nil {
		c := *r.Cadence
		out.Cadence = &c
	}
	out.Inputs = cloneInputs(r.Inputs)
	out.Runs = make([]*Run, len(r.Runs))
	for i, run := range r.Runs {
		out.Runs[i] = cloneRun(run)
	}
	return &out
}

func cloneAttention(a *AttentionItem) *AttentionItem {
	out := *a
	if a.ResolvedAt != nil {
		t := *a.ResolvedAt
		out.ResolvedAt = &t
	}
	return &out
}

func cloneCall(c CapabilityCall) CapabilityCall {
	c.PayloadTemplate = cloneJSONMap(c.PayloadTemplate)
	return c
}

func cloneAutomation(a *Automation) *Automation {
	out := *a
	out.Call = cloneCall(a.Call)
	return &out
}

// cloneJSONMap deep-copies a decoded JSON object, recursing into nested
// objects and arrays.
func cloneJSONMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneJSONValue(v)
	}
	return out
}

func cloneJSONValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneJSONMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneJSONValue(e)
		}
		return out
	default:
		return v
	}
}
