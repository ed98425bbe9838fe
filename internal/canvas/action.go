package canvas

import "github.com/mahisnghrwt/canvas-m-react-2/internal/model"

// Action is a transition request. The set of actions is closed; see Reduce.
type Action interface {
	Kind() string
	isAction()
}

type AddEpic struct {
	Epic model.Epic
}

type UpdateEpic struct {
	ID    int
	Patch model.EpicPatch
}

// CreateIntermediatePath replaces any in-progress path.
type CreateIntermediatePath struct {
	Path model.IntermediatePath
}

// PatchIntermediatePath replaces one endpoint of the in-progress path.
type PatchIntermediatePath struct {
	Endpoint model.Endpoint
	Value    model.Point
}

type RemoveIntermediatePath struct{}

// CreateNewPath commits a path and clears the in-progress one.
type CreateNewPath struct {
	Path model.Path
}

func (AddEpic) Kind() string                { return "ADD_EPIC" }
func (UpdateEpic) Kind() string             { return "UPDATE_EPIC" }
func (CreateIntermediatePath) Kind() string { return "CREATE_INTERMEDIATE_PATH" }
func (PatchIntermediatePath) Kind() string  { return "PATCH_INTERMEDIATE_PATH" }
func (RemoveIntermediatePath) Kind() string { return "REMOVE_INTERMEDIATE_PATH" }
func (CreateNewPath) Kind() string          { return "CREATE_NEW_PATH" }

func (AddEpic) isAction()                {}
func (UpdateEpic) isAction()             {}
func (CreateIntermediatePath) isAction() {}
func (PatchIntermediatePath) isAction()  {}
func (RemoveIntermediatePath) isAction() {}
func (CreateNewPath) isAction()          {}
