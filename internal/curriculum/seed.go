package curriculum

// seedSkills is the built-in skill catalog. IDs are stable: benchmark
// tables and persisted analytics events reference them.
var seedSkills = []Skill{
	{
		ID:          "NB5",
		Label:       "Number Bonds to 5",
		Description: "Pairs of numbers that add to 5",
		Domain:      DomainNumberFacts,
		Subdomain:   SubNumberBonds,
		Operation:   OpAddition,
		Topic:       TopicBonds,
		Bound:       5,
		GameModes:   []string{"number_bonds"},
	},
	{
		ID:          "NB10",
		Label:       "Number Bonds to 10",
		Description: "Pairs of numbers that add to 10",
		Domain:      DomainNumberFacts,
		Subdomain:   SubNumberBonds,
		Operation:   OpAddition,
		Topic:       TopicBonds,
		Bound:       10,
		GameModes:   []string{"number_bonds"},
	},
	{
		ID:          "NB20",
		Label:       "Number Bonds to 20",
		Description: "Pairs of numbers that add to 20",
		Domain:      DomainNumberFacts,
		Subdomain:   SubNumberBonds,
		Operation:   OpAddition,
		Topic:       TopicBonds,
		Bound:       20,
		GameModes:   []string{"number_bonds"},
	},
	{
		ID:          "ADD_10",
		Label:       "Addition within 10",
		Description: "Adding two numbers with totals up to 10",
		Domain:      DomainOperations,
		Subdomain:   SubAddition,
		Operation:   OpAddition,
		Bound:       10,
		GameModes:   []string{"addition"},
	},
	{
		ID:          "ADD_20",
		Label:       "Addition within 20",
		Description: "Adding two numbers with totals up to 20",
		Domain:      DomainOperations,
		Subdomain:   SubAddition,
		Operation:   OpAddition,
		Bound:       20,
		GameModes:   []string{"addition"},
	},
	{
		ID:          "SUB_10",
		Label:       "Subtraction within 10",
		Description: "Taking away from numbers up to 10",
		Domain:      DomainOperations,
		Subdomain:   SubSubtraction,
		Operation:   OpSubtraction,
		Bound:       10,
		GameModes:   []string{"subtraction"},
	},
	{
		ID:          "SUB_20",
		Label:       "Subtraction within 20",
		Description: "Taking away from numbers up to 20",
		Domain:      DomainOperations,
		Subdomain:   SubSubtraction,
		Operation:   OpSubtraction,
		Bound:       20,
		GameModes:   []string{"subtraction"},
	},
	{
		ID:          "DBL_10",
		Label:       "Doubles to 10+10",
		Description: "Doubling numbers from 1 to 10",
		Domain:      DomainNumberProperties,
		Subdomain:   SubDoublesHalves,
		Operation:   OpAddition,
		Topic:       TopicDoubles,
		Bound:       10,
		GameModes:   []string{"doubles"},
	},
	{
		ID:          "HLV_20",
		Label:       "Halves to 20",
		Description: "Halving even numbers from 2 to 20",
		Domain:      DomainNumberProperties,
		Subdomain:   SubDoublesHalves,
		Operation:   OpDivision,
		Topic:       TopicHalves,
		Bound:       10,
		GameModes:   []string{"halves"},
	},
	{
		ID:          "SQ_1_12",
		Label:       "Square Numbers to 144",
		Description: "Squares of 1 through 12",
		Domain:      DomainNumberProperties,
		Subdomain:   SubSquares,
		Operation:   OpMultiplication,
		Topic:       TopicSquares,
		Bound:       12,
		GameModes:   []string{"squares"},
	},
	{
		ID:          "TT_CORE",
		Label:       "Times Tables 2, 5 and 10",
		Description: "The first times tables: 2s, 5s and 10s",
		Domain:      DomainOperations,
		Subdomain:   SubMultiplication,
		Operation:   OpMultiplication,
		Tables:      []int{2, 5, 10},
		GameModes:   []string{"times_tables"},
	},
	{
		ID:          "TT_MID",
		Label:       "Times Tables 3, 4 and 6",
		Description: "The middle times tables: 3s, 4s and 6s",
		Domain:      DomainOperations,
		Subdomain:   SubMultiplication,
		Operation:   OpMultiplication,
		Tables:      []int{3, 4, 6},
		GameModes:   []string{"times_tables"},
	},
	{
		ID:          "TT_HARD",
		Label:       "Times Tables 7, 8 and 9",
		Description: "The trickiest times tables: 7s, 8s and 9s",
		Domain:      DomainOperations,
		Subdomain:   SubMultiplication,
		Operation:   OpMultiplication,
		Tables:      []int{7, 8, 9},
		GameModes:   []string{"times_tables"},
	},
	{
		ID:          "TT_11_12",
		Label:       "Times Tables 11 and 12",
		Description: "The big times tables: 11s and 12s",
		Domain:      DomainOperations,
		Subdomain:   SubMultiplication,
		Operation:   OpMultiplication,
		Tables:      []int{11, 12},
		GameModes:   []string{"times_tables"},
	},
	{
		ID:          "DIV_CORE",
		Label:       "Division by 2, 5 and 10",
		Description: "Sharing by 2, 5 and 10",
		Domain:      DomainOperations,
		Subdomain:   SubDivision,
		Operation:   OpDivision,
		Tables:      []int{2, 5, 10},
		GameModes:   []string{"division"},
	},
	{
		ID:          "DIV_MID",
		Label:       "Division by 3, 4 and 6",
		Description: "Sharing by 3, 4 and 6",
		Domain:      DomainOperations,
		Subdomain:   SubDivision,
		Operation:   OpDivision,
		Tables:      []int{3, 4, 6},
		GameModes:   []string{"division"},
	},
}
