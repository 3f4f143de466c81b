package processor

const (
	resultPrefix = "The received message is: '"
	resultSuffix = "'"
)

// Process formats a message into the processed result.
// It is total and performs no trimming or escaping of the input.
func Process(message string) string {
	return resultPrefix + message + resultSuffix
}
