package tiptap

// getAttrString безопасно извлекает строковый атрибут из map.
func getAttrString(attrs map[string]interface{}, key string) string {
	if attrs == nil {
		return ""
	}
	str, _ := attrs[key].(string)
	return str
}

// getAttrIntPtr извлекает целочисленный атрибут. nil, если атрибута нет или он не число.
func getAttrIntPtr(attrs map[string]interface{}, key string) *int {
	if attrs == nil {
		return nil
	}

	var i int
	switch v := attrs[key].(type) {
	// Может быть float64 из JSON
	case float64:
		i = int(v)
	case int:
		i = v
	default:
		return nil
	}
	return &i
}

// getAttrBoolPtr извлекает булевый атрибут. nil, если атрибута нет.
func getAttrBoolPtr(attrs map[string]interface{}, key string) *bool {
	if attrs == nil {
		return nil
	}
	b, ok := attrs[key].(bool)
	if !ok {
		return nil
	}
	return &b
}
