package traits

import (
	"fmt"
	"math/rand"
)

// Category is a named list of candidate values for one slot of the prompt.
type Category struct {
	Name    string
	Options []string
}

// Table keeps categories in template order.
type Table []Category

const promptTemplate = "%s female in %s clothing %s %s %s, %s for a Tinder profile."

var defaultTable = Table{
	{
		Name:    "nationality",
		Options: []string{"Indian", "African", "Asian", "Latino", "Caucasian", "Middle Eastern", "Mediterranean", "Caribbean"},
	},
	{
		Name:    "clothing",
		Options: []string{"casual", "sporty", "formal", "traditional", "summer wear", "winter coat"},
	},
	{
		Name:    "activity",
		Options: []string{"posing", "sitting", "headshot"},
	},
	{
		Name: "setting",
		Options: []string{
			"on a sandy beach",
			"next to the shoreline of a modern city",
			"in a dense forest",
			"on a mountain trail",
			"in a futuristic cityscape",
		},
	},
	{
		Name:    "weather",
		Options: []string{"on a sunny day", "during sunset", "on a cloudy afternoon", "on a snowy evening"},
	},
	{
		// empty option means no accessory
		Name:    "accessory",
		Options: []string{"holding a cup of coffee", "with sunglasses on", "wearing a hat", ""},
	},
}

// Default returns a copy of the built-in trait tables.
func Default() Table {
	table := make(Table, len(defaultTable))
	for i, c := range defaultTable {
		table[i] = Category{Name: c.Name, Options: append([]string(nil), c.Options...)}
	}
	return table
}

// Get returns the category with the given name.
func (t Table) Get(name string) (Category, bool) {
	for _, c := range t {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Composer draws random prompts from a trait table.
type Composer struct {
	table Table
	intN  func(n int) int
}

func NewComposer(table Table) *Composer {
	return &Composer{table: table, intN: rand.Intn}
}

func (c *Composer) Table() Table {
	return c.table
}

// Compose returns a random description built from one option per category.
func (c *Composer) Compose() string {
	prompt, _ := c.ComposeWithChoices()
	return prompt
}

// ComposeWithChoices also returns the option picked for each category,
// keyed by category name.
func (c *Composer) ComposeWithChoices() (string, map[string]string) {
	choices := make(map[string]string, len(c.table))
	picked := make([]any, 0, len(c.table))
	for _, category := range c.table {
		var option string
		if len(category.Options) > 0 {
			option = category.Options[c.intN(len(category.Options))]
		}
		choices[category.Name] = option
		picked = append(picked, option)
	}
	// the template only has six slots
	for len(picked) < 6 {
		picked = append(picked, "")
	}
	return fmt.Sprintf(promptTemplate, picked[:6]...), choices
}

// Compose draws a prompt from table using the package-level random source.
func Compose(table Table) string {
	return NewComposer(table).Compose()
}
