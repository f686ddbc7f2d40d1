package internallinking

type ReasonTag string

const (
	ReasonNearby            ReasonTag = "nearby"
	ReasonSameDepartment    ReasonTag = "same-department"
	ReasonSimilarPopulation ReasonTag = "similar-population"
)

var reasonHumanName = map[ReasonTag]string{
	ReasonNearby:            "Ville à proximité",
	ReasonSameDepartment:    "Autre ville du département",
	ReasonSimilarPopulation: "Ville de taille similaire",
}

func (r ReasonTag) ToHuman() string {
	if human, exist := reasonHumanName[r]; exist {
		return human
	}
	return string(r)
}

// Reason is one of Nearby, SameDepartment or SimilarPopulation.
type Reason interface {
	Tag() ReasonTag
	isReason()
}

type Nearby struct {
	DistanceKm int
}

func (Nearby) Tag() ReasonTag { return ReasonNearby }
func (Nearby) isReason()      {}

type SameDepartment struct{}

func (SameDepartment) Tag() ReasonTag { return ReasonSameDepartment }
func (SameDepartment) isReason()      {}

type SimilarPopulation struct{}

func (SimilarPopulation) Tag() ReasonTag { return ReasonSimilarPopulation }
func (SimilarPopulation) isReason()      {}
