package authoring

import (
	"errors"
	"sync"

	"github.com/lshigami/tinysteps/internal/quiz"
)

var ErrFormNotFound = errors.New("form not found in batch")

// State is where a sub-form sits in the draft/saved lifecycle.
type State string

const (
	StateEditing State = "editing"
	StateDraft   State = "draft"
	StateSaved   State = "saved"
)

// FormInstance is one sub-form of a batch. Its ID is also the id of the
// question it produces.
type FormInstance struct {
	ID      string
	Form    *QuestionForm
	State   State
	Payload *quiz.Question
	// Stored is set once the question exists in the backend, so later saves update it.
	Stored bool
	// Revision changes whenever the payload does.
	Revision int
	saving   bool
}

// FormView is a read-only copy of a form instance.
type FormView struct {
	ID       string
	Title    string
	State    State
	Question quiz.Question
	Payload  *quiz.Question
	Stored   bool
	Revision int
	Saving   bool
}

type Counts struct {
	Editing int
	Draft   int
	Saved   int
}

// Batch is an ordered list of sub-forms sharing one category.
type Batch struct {
	mu       sync.Mutex
	id       string
	category quiz.Category
	forms    []*FormInstance
	opts     []FormOption
}

// NewBatch opens a batch holding one blank form.
func NewBatch(id string, category quiz.Category, opts ...FormOption) *Batch {
	b := &Batch{id: id, category: category, opts: opts}
	b.forms = append(b.forms, b.newInstance())
	return b
}

func (b *Batch) newInstance() *FormInstance {
	form := NewCreateForm(b.category, b.opts...)
	return &FormInstance{ID: form.ID(), Form: form, State: StateEditing}
}

func (b *Batch) ID() string { return b.id }

func (b *Batch) Category() quiz.Category { return b.category }

func (b *Batch) Forms() []FormView {
	b.mu.Lock()
	defer b.mu.Unlock()

	views := make([]FormView, 0, len(b.forms))
	for _, fi := range b.forms {
		views = append(views, viewOf(fi))
	}
	return views
}

func (b *Batch) Form(formID string) (FormView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fi := b.find(formID)
	if fi == nil {
		return FormView{}, ErrFormNotFound
	}
	return viewOf(fi), nil
}

func (b *Batch) AddForm() FormView {
	b.mu.Lock()
	defer b.mu.Unlock()

	fi := b.newInstance()
	b.forms = append(b.forms, fi)
	return viewOf(fi)
}

// RemoveForm drops a sub-form. Removing the only remaining form does nothing
// and reports false.
func (b *Batch) RemoveForm(formID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, fi := range b.forms {
		if fi.ID != formID {
			continue
		}
		if len(b.forms) == 1 {
			return false, nil
		}
		b.forms = append(b.forms[:i], b.forms[i+1:]...)
		return true, nil
	}
	return false, ErrFormNotFound
}

// Edit applies fn to a sub-form. Once a form has been submitted its payload
// follows every later edit, and a saved form goes back to draft.
func (b *Batch) Edit(formID string, fn func(*QuestionForm) error) (FormView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fi := b.find(formID)
	if fi == nil {
		return FormView{}, ErrFormNotFound
	}
	err := fn(fi.Form)
	if fi.Payload != nil {
		payload := fi.Form.Snapshot()
		fi.Payload = &payload
		fi.State = StateDraft
		fi.Revision++
	}
	return viewOf(fi), err
}

// SubmitForm validates a sub-form and records it as a draft without persisting.
func (b *Batch) SubmitForm(formID string) (FormView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fi := b.find(formID)
	if fi == nil {
		return FormView{}, ErrFormNotFound
	}
	if err := fi.Form.Validate(); err != nil {
		return viewOf(fi), err
	}
	payload := fi.Form.Snapshot()
	fi.Payload = &payload
	fi.State = StateDraft
	fi.Revision++
	return viewOf(fi), nil
}

// Claim returns the drafts waiting for a save, in form order, and marks them
// in flight so a concurrent save skips them. Each claimed form must be
// finished with MarkSaved or Release.
func (b *Batch) Claim() []FormView {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []FormView
	for _, fi := range b.forms {
		if fi.State == StateDraft && fi.Payload != nil && !fi.saving {
			fi.saving = true
			out = append(out, viewOf(fi))
		}
	}
	return out
}

// MarkSaved records that the payload at revision was persisted. The form
// moves to saved only when it was not edited since the claim; otherwise it
// stays a draft holding the newer payload and MarkSaved reports false.
// A form removed meanwhile is ignored.
func (b *Batch) MarkSaved(formID string, revision int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	fi := b.find(formID)
	if fi == nil {
		return true
	}
	fi.saving = false
	fi.Stored = true
	if fi.Revision != revision || fi.State != StateDraft {
		return false
	}
	fi.State = StateSaved
	return true
}

// Release ends a claim without a successful write.
func (b *Batch) Release(formID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if fi := b.find(formID); fi != nil {
		fi.saving = false
	}
}

func (b *Batch) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()

	var c Counts
	for _, fi := range b.forms {
		switch fi.State {
		case StateEditing:
			c.Editing++
		case StateDraft:
			c.Draft++
		case StateSaved:
			c.Saved++
		}
	}
	return c
}

func (b *Batch) find(formID string) *FormInstance {
	for _, fi := range b.forms {
		if fi.ID == formID {
			return fi
		}
	}
	return nil
}

func viewOf(fi *FormInstance) FormView {
	v := FormView{
		ID:       fi.ID,
		Title:    fi.Form.Title(),
		State:    fi.State,
		Question: fi.Form.Snapshot(),
		Stored:   fi.Stored,
		Revision: fi.Revision,
		Saving:   fi.saving,
	}
	if fi.Payload != nil {
		p := fi.Payload.Clone()
		v.Payload = &p
	}
	return v
}
