package m3uparser

// parseExtinfAttrs scans the attribute section of an EXTINF line and returns
// its key="value" pairs. The scan is quote-aware: commas inside quoted values
// (group-title="News, Sports") do not terminate the attribute list, while an
// unquoted comma marks the start of the display name and ends the scan.
func parseExtinfAttrs(data string) map[string]string {
	attrs := make(map[string]string)

	inKey := true
	var key string
	var value string
	for i := 0; i < len(data); i++ {
		if inKey && (data[i] == ' ' || data[i] == '=') {
			continue
		}
		if inKey && data[i] == ',' {
			// End of the attribute section.
			break
		}
		if data[i] == '"' {
			if !inKey {
				attrs[key] = value
				key = ""
				value = ""
			}
			inKey = !inKey
			continue
		}
		if inKey {
			key += string(data[i])
		} else {
			value += string(data[i])
		}
	}

	return attrs
}
