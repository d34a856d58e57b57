package workflow

const (
	// Signal names
	TrialConvertedSignalName = "trial-converted"
	TrialCanceledSignalName  = "trial-canceled"
)

// TrialConvertedSignal ends the workflow early when payment events show the
// trial became a paid subscription.
type TrialConvertedSignal struct {
	ExternalSubscriptionID string `json:"external_subscription_id"`
}

// TrialCanceledSignal ends the workflow early on cancellation.
type TrialCanceledSignal struct {
	Reason string `json:"reason"`
}
