package request

// optionalString reports whether field was sent and its normalized value;
// an explicit null or blank string yields (nil, true).
func optionalString(fields map[string]any, field string) (*string, bool) {
	raw, ok := fields[field]
	if !ok {
		return nil, false
	}
	s, isString := raw.(string)
	if !isString {
		return nil, true
	}
	return &s, true
}

func optionalBool(fields map[string]any, field string) *bool {
	b, ok := fields[field].(bool)
	if !ok {
		return nil
	}
	return &b
}
