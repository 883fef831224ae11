package content

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type corpusCategory struct {
	Name      string           `yaml:"name"`
	Questions []*QuestionModel `yaml:"questions"`
}

type corpusTrack struct {
	Name    string         `yaml:"name"`
	Modules []*LessonModel `yaml:"modules"`
}

type corpusFile struct {
	Categories []*corpusCategory `yaml:"categories"`
	Projects   []*ProjectModel   `yaml:"projects"`
	Tracks     []*corpusTrack    `yaml:"tracks"`
}

var knownCategories = map[string]bool{
	CategoryBasic:        true,
	CategoryIntermediate: true,
	CategoryAdvanced:     true,
	CategoryProjects:     true,
	CategoryRust:         true,
}

// Store in-memory corpus index. Read-only after construction, safe for
// concurrent use without locking
type Store struct {
	categories []string
	byCategory map[string][]*QuestionModel
	questions  []*QuestionModel
	tags       []string
	byTag      map[string][]*QuestionModel
	projects   []*ProjectModel
	byTrack    map[string][]*LessonModel
}

var _ ContentRepository = &Store{}

// LoadStore read a YAML corpus file and build the Store
func LoadStore(path string) (*Store, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	var file corpusFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return newStore(&file)
}

func newStore(file *corpusFile) (*Store, error) {
	store := &Store{
		byCategory: make(map[string][]*QuestionModel),
		byTag:      make(map[string][]*QuestionModel),
		byTrack:    make(map[string][]*LessonModel),
	}
	for _, category := range file.Categories {
		if !knownCategories[category.Name] {
			return nil, fmt.Errorf("unknown category %q in corpus", category.Name)
		}
		if _, ok := store.byCategory[category.Name]; ok {
			return nil, fmt.Errorf("duplicate category %q in corpus", category.Name)
		}
		store.categories = append(store.categories, category.Name)
		store.byCategory[category.Name] = category.Questions
		for _, question := range category.Questions {
			question.Category = category.Name
			if question.ID == "" {
				question.ID = Slugify(question.Title)
			}
			if err := indexQuestion(store, question); err != nil {
				return nil, err
			}
		}
	}
	store.projects = file.Projects
	for _, track := range file.Tracks {
		sort.SliceStable(track.Modules, func(i, j int) bool {
			return track.Modules[i].Order < track.Modules[j].Order
		})
		for _, module := range track.Modules {
			module.Track = track.Name
		}
		store.byTrack[track.Name] = track.Modules
	}
	return store, nil
}

func indexQuestion(store *Store, question *QuestionModel) error {
	seen := make(map[string]bool, len(question.Tags))
	for _, tag := range question.Tags {
		if seen[tag] {
			return fmt.Errorf("question %q: duplicate tag %q", question.ID, tag)
		}
		seen[tag] = true
		if _, ok := store.byTag[tag]; !ok {
			store.tags = append(store.tags, tag)
		}
		store.byTag[tag] = append(store.byTag[tag], question)
	}
	store.questions = append(store.questions, question)
	return nil
}

// Slugify derive a stable question ID from its title
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Categories corpus category names in file order
func (store *Store) Categories() []string {
	return store.categories
}

// QuestionsByCategory all questions in one category bucket
func (store *Store) QuestionsByCategory(category string) ([]*QuestionModel, error) {
	questions, ok := store.byCategory[category]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return questions, nil
}

// Search case-insensitive substring match over title and answer, all
// categories, corpus order
func (store *Store) Search(query string) []*QuestionModel {
	needle := strings.ToLower(query)
	var result []*QuestionModel
	for _, question := range store.questions {
		if strings.Contains(strings.ToLower(question.Title), needle) ||
			strings.Contains(strings.ToLower(question.Answer), needle) {
			result = append(result, question)
		}
	}
	return result
}

// QuestionsByTag exact tag membership, all categories
func (store *Store) QuestionsByTag(tag string) []*QuestionModel {
	return store.byTag[tag]
}

// Tags distinct tags in first-seen corpus order
func (store *Store) Tags() []string {
	return store.tags
}

// Projects all project descriptors
func (store *Store) Projects() []*ProjectModel {
	return store.projects
}

// Lessons modules of one language track, ordered by module order
func (store *Store) Lessons(track string) ([]*LessonModel, error) {
	modules, ok := store.byTrack[track]
	if !ok {
		return nil, ErrTrackNotFound
	}
	return modules, nil
}
