package constant

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusReview     ProjectStatus = "review"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusReview, ProjectStatusCompleted:
		return true
	}
	return false
}

type AlbumType string

const (
	AlbumTypeWedding    AlbumType = "wedding"
	AlbumTypePortrait   AlbumType = "portrait"
	AlbumTypeCommercial AlbumType = "commercial"
	AlbumTypeEvent      AlbumType = "event"
	AlbumTypeProduct    AlbumType = "product"
	AlbumTypeOther      AlbumType = "other"
)

func (a AlbumType) Valid() bool {
	switch a {
	case AlbumTypeWedding, AlbumTypePortrait, AlbumTypeCommercial, AlbumTypeEvent, AlbumTypeProduct, AlbumTypeOther:
		return true
	}
	return false
}
