// Package article models the labelled news articles used to train classifiers.
package article

// Category is a classification label.
type Category string

// The closed category set. Order is significant: confusion matrix rows and
// columns and classifier output indices follow it.
const (
	Tech          Category = "Tech"
	Finance       Category = "Finance"
	Healthcare    Category = "Healthcare"
	Sports        Category = "Sports"
	Politics      Category = "Politics"
	Entertainment Category = "Entertainment"
)

var categories = [...]Category{Tech, Finance, Healthcare, Sports, Politics, Entertainment}

// Categories returns the fixed ordered category set.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryNames returns Categories as plain strings.
func CategoryNames() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// IndexOf returns the position of c in the fixed order, or -1.
func IndexOf(c Category) int {
	for i, known := range categories {
		if known == c {
			return i
		}
	}
	return -1
}

// Article is a labelled training example.
type Article struct {
	ID       string
	Title    string
	Content  string
	Category Category
}

// Text is the string embedded for this article: title and body.
func (a Article) Text() string { return a.Title + " " + a.Content }
