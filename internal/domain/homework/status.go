// internal/domain/homework/status.go
package homework

// Status is the review state reported by the API for a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable sentence for s.
// ok is false for statuses the bot does not know.
func (s Status) Verdict() (verdict string, ok bool) {
	verdict, ok = verdicts[s]
	return verdict, ok
}

// Known reports whether s is one of the fixed API statuses.
func (s Status) Known() bool {
	_, ok := verdicts[s]
	return ok
}
