package states

type State string

const (
	StateNone State = "none"
)

// rc -> recipe create
// ru -> recipe update

// recipe create states
const (
	RecipeCreateWaitPhoto State = "rc_wt_photo"
)

// recipe update states
const (
	RecipeUpdateWaitPhoto State = "ru_wt_photo"
)
