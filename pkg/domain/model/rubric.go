package model

import (
	"github.com/healthy-campus/hurs/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// KeyAspect is a named cluster of yes/no questions under a rubric item.
// Question order is significant: the position of a question within its
// aspect is the identity used to correlate form inputs with question text.
type KeyAspect struct {
	Name      types.GroupName `yaml:"name"`
	Questions []string        `yaml:"questions"`
}

// Validate validates the key aspect
func (a *KeyAspect) Validate() error {
	if a.Name == "" {
		return goerr.New("key aspect name is required")
	}
	if len(a.Questions) == 0 {
		return goerr.New("key aspect has no questions",
			goerr.V("aspect", a.Name))
	}
	for i, q := range a.Questions {
		if q == "" {
			return goerr.New("empty question text",
				goerr.V("aspect", a.Name),
				goerr.V("index", i))
		}
	}
	return nil
}

// Item is one rubric item: an ordered list of key aspects
type Item struct {
	Name    types.ItemName `yaml:"name"`
	Aspects []KeyAspect    `yaml:"aspects"`
}

// Validate validates the item
func (it *Item) Validate() error {
	if it.Name == "" {
		return goerr.New("rubric item name is required")
	}
	if len(it.Aspects) == 0 {
		return goerr.New("rubric item has no key aspects",
			goerr.V("item", it.Name))
	}
	seen := make(map[types.GroupName]bool)
	for i, aspect := range it.Aspects {
		if err := aspect.Validate(); err != nil {
			return goerr.Wrap(err, "invalid key aspect at index",
				goerr.V("item", it.Name),
				goerr.V("index", i))
		}
		if seen[aspect.Name] {
			return goerr.New("duplicate key aspect name",
				goerr.V("item", it.Name),
				goerr.V("aspect", aspect.Name))
		}
		seen[aspect.Name] = true
	}
	return nil
}

// QuestionCount returns the total number of questions across all aspects
func (it *Item) QuestionCount() int {
	total := 0
	for _, aspect := range it.Aspects {
		total += len(aspect.Questions)
	}
	return total
}

// Rubric is the full assessment catalog. It is fixed at process start and
// never mutated afterwards; all accessors return copies or read-only views.
type Rubric struct {
	Items []Item `yaml:"items"`
}

// Validate validates the rubric
func (r *Rubric) Validate() error {
	if len(r.Items) == 0 {
		return goerr.New("at least one rubric item is required")
	}
	seen := make(map[types.ItemName]bool)
	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			return goerr.Wrap(err, "invalid rubric item at index",
				goerr.V("index", i))
		}
		if seen[item.Name] {
			return goerr.New("duplicate rubric item name",
				goerr.V("item", item.Name))
		}
		seen[item.Name] = true
	}
	return nil
}

// ListItems returns the ordered names of all rubric items
func (r *Rubric) ListItems() []types.ItemName {
	names := make([]types.ItemName, 0, len(r.Items))
	for _, item := range r.Items {
		names = append(names, item.Name)
	}
	return names
}

// Item finds a rubric item by name
func (r *Rubric) Item(name types.ItemName) (*Item, error) {
	for _, item := range r.Items {
		if item.Name == name {
			// Return a copy to prevent modification
			result := item
			return &result, nil
		}
	}
	return nil, goerr.Wrap(ErrItemNotFound, "failed to find rubric item",
		goerr.V("item", name))
}

// HasItem checks if the given item name exists in the rubric
func (r *Rubric) HasItem(name types.ItemName) bool {
	for _, item := range r.Items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// Groups returns the ordered key aspect names of an item
func (r *Rubric) Groups(item types.ItemName) ([]types.GroupName, error) {
	it, err := r.Item(item)
	if err != nil {
		return nil, err
	}
	names := make([]types.GroupName, 0, len(it.Aspects))
	for _, aspect := range it.Aspects {
		names = append(names, aspect.Name)
	}
	return names, nil
}

// Questions returns the ordered question texts of a key aspect
func (r *Rubric) Questions(item types.ItemName, group types.GroupName) ([]string, error) {
	it, err := r.Item(item)
	if err != nil {
		return nil, err
	}
	for _, aspect := range it.Aspects {
		if aspect.Name == group {
			questions := make([]string, len(aspect.Questions))
			copy(questions, aspect.Questions)
			return questions, nil
		}
	}
	return nil, goerr.Wrap(ErrGroupNotFound, "failed to find key aspect",
		goerr.V("item", item),
		goerr.V("aspect", group))
}
