package model

// ModelName identifies a classification model known to the backend.
type ModelName string

// Model identifiers compiled into the console.
const (
	ModelLogisticRegression ModelName = "logistic_regression"
	ModelRVM                ModelName = "rvm"
	ModelRandomForest       ModelName = "random_forest"
)

// DefaultModels returns the static model enumeration.
func DefaultModels() []ModelName {
	return []ModelName{ModelLogisticRegression, ModelRVM, ModelRandomForest}
}

// ModelNames converts plain strings into model identifiers.
func ModelNames(names []string) []ModelName {
	out := make([]ModelName, 0, len(names))
	for _, n := range names {
		out = append(out, ModelName(n))
	}
	return out
}

// TrainRequest is the body of a training call.
type TrainRequest struct {
	ModelName      ModelName `json:"model_name"`
	DatasetVersion string    `json:"dataset_version"`
}

// SelectRequest is the body of a model activation call.
type SelectRequest struct {
	ModelName ModelName `json:"model_name"`
}

// MessageResponse is the acknowledgement returned by generate, train and select calls.
type MessageResponse struct {
	Message string `json:"message"`
}
