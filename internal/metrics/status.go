package metrics

const (
	statusSuccess = "success"
	statusError   = "error"
	unknownLabel  = "unknown"
)

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

func orUnknown(label string) string {
	if label == "" {
		return unknownLabel
	}
	return label
}
