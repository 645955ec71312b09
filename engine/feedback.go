package engine

// FeedbackKind classifies the last user-facing message for presentation styling
type FeedbackKind uint8

const (
	FeedbackInfo FeedbackKind = iota
	FeedbackSuccess
	FeedbackError
)

func (k FeedbackKind) String() string {
	names := [...]string{"info", "success", "error"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}
