package shows

type ShowStatus string

const (
	ShowStatusDraft     ShowStatus = "draft"
	ShowStatusPublished ShowStatus = "published"
	ShowStatusCancelled ShowStatus = "cancelled"
	ShowStatusCompleted ShowStatus = "completed"
)

func (s ShowStatus) IsValid() bool {
	switch s {
	case ShowStatusDraft, ShowStatusPublished, ShowStatusCancelled, ShowStatusCompleted:
		return true
	}
	return false
}
