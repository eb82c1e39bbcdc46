// Package planner implements the adaptive study-planning engine: roadmap
// generation from the branch/employer knowledge base, calendar schedule
// generation under daily-time constraints, and the feedback loop that adapts
// subject weights from performance logs.
//
// Everything in this package is a pure computation over in-memory inputs.
// Nothing here performs I/O, touches the database, or holds shared mutable
// state between calls; persistence and transport live in the service and
// repository layers.
package planner

// PrepLevel is a student's self-assessed preparation level.
type PrepLevel string

const (
	LevelBeginner     PrepLevel = "beginner"
	LevelIntermediate PrepLevel = "intermediate"
	LevelAdvanced     PrepLevel = "advanced"
)

// PrepLevels lists levels in progression order.
var PrepLevels = []PrepLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Index returns the level's position in the progression, defaulting unknown
// values to advanced so that filtering stays inclusive.
func (l PrepLevel) Index() int {
	for i, lv := range PrepLevels {
		if lv == l {
			return i
		}
	}
	return len(PrepLevels) - 1
}

// EmployerType classifies the kind of company the student is targeting.
// It drives the per-category weight multipliers.
type EmployerType string

const (
	EmployerService EmployerType = "service"
	EmployerProduct EmployerType = "product"
	EmployerCore    EmployerType = "core"
)

// CatalogTopic is one entry in a branch's skill matrix.
type CatalogTopic struct {
	Name     string
	Days     int
	Category string
}

// ExtraTopic is an employer-specific bolt-on topic. Its duration is used
// as-is; employer-type multipliers do not apply.
type ExtraTopic struct {
	Name     string
	Days     int
	Category string
	Level    PrepLevel
}

// MilestoneTemplate marks the checkpoint reached after finishing all topics
// of a level.
type MilestoneTemplate struct {
	AfterLevel  PrepLevel
	Title       string
	Description string
}

// Catalog is the static knowledge base the roadmap pipeline draws from.
// Construct it once (DefaultCatalog) and pass it explicitly; it is never
// mutated after construction.
type Catalog struct {
	Branches        map[string]map[PrepLevel][]CatalogTopic
	EmployerWeights map[EmployerType]map[string]float64
	EmployerExtras  map[string][]ExtraTopic
	Milestones      []MilestoneTemplate
}

// Fallbacks for unknown branch / employer-type keys. Resolving to these is
// designed behavior, not an error.
const (
	DefaultBranch       = "CSE"
	DefaultEmployerType = EmployerService
)

// BranchTopics resolves a branch's skill matrix, falling back to CSE.
func (c *Catalog) BranchTopics(branch string) map[PrepLevel][]CatalogTopic {
	if t, ok := c.Branches[branch]; ok {
		return t
	}
	return c.Branches[DefaultBranch]
}

// WeightsFor resolves an employer type's category multipliers, falling back
// to the service table.
func (c *Catalog) WeightsFor(employerType EmployerType) map[string]float64 {
	if w, ok := c.EmployerWeights[employerType]; ok {
		return w
	}
	return c.EmployerWeights[DefaultEmployerType]
}

// ExtrasFor returns the bolt-on topics for a named employer, nil if none.
func (c *Catalog) ExtrasFor(employer string) []ExtraTopic {
	return c.EmployerExtras[employer]
}

// SupportedBranches returns the branch keys with dedicated skill matrices.
func (c *Catalog) SupportedBranches() []string {
	return []string{"CSE", "IT", "ECE", "EEE", "Mechanical", "Civil"}
}

// DefaultCatalog builds the built-in knowledge base: per-branch skill
// matrices, employer-type category weights, employer-specific extras and the
// three milestone templates.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Branches: map[string]map[PrepLevel][]CatalogTopic{
			"CSE": {
				LevelBeginner: {
					{Name: "Programming Basics (C / Python)", Days: 5, Category: "programming"},
					{Name: "Variables, Data Types & Operators", Days: 3, Category: "programming"},
					{Name: "Control Structures & Loops", Days: 3, Category: "programming"},
					{Name: "Functions & Scope", Days: 3, Category: "programming"},
					{Name: "Arrays & Strings", Days: 4, Category: "dsa"},
					{Name: "Linked Lists", Days: 4, Category: "dsa"},
					{Name: "Basic Aptitude – Numbers & Percentages", Days: 3, Category: "aptitude"},
					{Name: "Basic Aptitude – Time & Work", Days: 3, Category: "aptitude"},
					{Name: "Logical Reasoning Fundamentals", Days: 3, Category: "aptitude"},
				},
				LevelIntermediate: {
					{Name: "Stacks & Queues", Days: 4, Category: "dsa"},
					{Name: "Recursion & Backtracking", Days: 5, Category: "dsa"},
					{Name: "Trees & Binary Search Trees", Days: 5, Category: "dsa"},
					{Name: "Hashing & Hash Maps", Days: 3, Category: "dsa"},
					{Name: "Sorting & Searching Algorithms", Days: 4, Category: "dsa"},
					{Name: "DBMS – SQL, Normalization, Joins", Days: 5, Category: "core_cs"},
					{Name: "OS – Processes, Threads, Scheduling", Days: 5, Category: "core_cs"},
					{Name: "OOP Concepts (Java / C++)", Days: 4, Category: "programming"},
					{Name: "Networking – TCP/IP, OSI Model", Days: 4, Category: "core_cs"},
					{Name: "Verbal Ability & Reading Comprehension", Days: 3, Category: "aptitude"},
				},
				LevelAdvanced: {
					{Name: "Graphs – BFS, DFS, Shortest Path", Days: 6, Category: "dsa"},
					{Name: "Dynamic Programming", Days: 7, Category: "dsa"},
					{Name: "Greedy Algorithms", Days: 3, Category: "dsa"},
					{Name: "System Design Basics", Days: 5, Category: "system_design"},
					{Name: "Design Patterns & SOLID Principles", Days: 4, Category: "system_design"},
					{Name: "Advanced SQL & Query Optimization", Days: 3, Category: "core_cs"},
					{Name: "Mock Interviews & HR Preparation", Days: 5, Category: "soft_skills"},
					{Name: "Resume Building & Project Showcase", Days: 3, Category: "soft_skills"},
				},
			},
			"ECE": {
				LevelBeginner: {
					{Name: "Basic Electronics & Circuit Theory", Days: 5, Category: "core_ece"},
					{Name: "Network Theory – KVL, KCL, Thevenin", Days: 5, Category: "core_ece"},
					{Name: "Digital Electronics – Logic Gates", Days: 4, Category: "core_ece"},
					{Name: "Number Systems & Boolean Algebra", Days: 3, Category: "core_ece"},
					{Name: "Programming Basics (C / Python)", Days: 5, Category: "programming"},
					{Name: "Basic Aptitude", Days: 4, Category: "aptitude"},
				},
				LevelIntermediate: {
					{Name: "Signals & Systems", Days: 5, Category: "core_ece"},
					{Name: "Analog Electronics – Op-Amps, BJT", Days: 5, Category: "core_ece"},
					{Name: "Microprocessors & Microcontrollers", Days: 5, Category: "core_ece"},
					{Name: "Communication Systems – AM, FM, PM", Days: 5, Category: "core_ece"},
					{Name: "Control Systems Basics", Days: 4, Category: "core_ece"},
					{Name: "Data Structures – Arrays, Linked List", Days: 4, Category: "dsa"},
					{Name: "DBMS Fundamentals", Days: 3, Category: "core_cs"},
					{Name: "Verbal & Logical Reasoning", Days: 3, Category: "aptitude"},
				},
				LevelAdvanced: {
					{Name: "VLSI Design Basics", Days: 5, Category: "core_ece"},
					{Name: "Electromagnetic Theory", Days: 5, Category: "core_ece"},
					{Name: "DSP – Digital Signal Processing", Days: 5, Category: "core_ece"},
					{Name: "Embedded Systems & IoT", Days: 5, Category: "core_ece"},
					{Name: "Trees, Graphs & DP (for IT roles)", Days: 6, Category: "dsa"},
					{Name: "Mock Interviews & HR Preparation", Days: 4, Category: "soft_skills"},
				},
			},
			"Mechanical": {
				LevelBeginner: {
					{Name: "Engineering Mechanics & Statics", Days: 5, Category: "core_mech"},
					{Name: "Thermodynamics – Laws & Cycles", Days: 5, Category: "core_mech"},
					{Name: "Strength of Materials – Stress, Strain", Days: 5, Category: "core_mech"},
					{Name: "Engineering Drawing & GD&T", Days: 4, Category: "core_mech"},
					{Name: "Programming Basics (C / Python)", Days: 4, Category: "programming"},
					{Name: "Basic Aptitude", Days: 4, Category: "aptitude"},
				},
				LevelIntermediate: {
					{Name: "Fluid Mechanics", Days: 5, Category: "core_mech"},
					{Name: "Heat Transfer", Days: 5, Category: "core_mech"},
					{Name: "Machine Design", Days: 5, Category: "core_mech"},
					{Name: "Manufacturing Processes & Welding", Days: 5, Category: "core_mech"},
					{Name: "Theory of Machines – Gears, Cams", Days: 4, Category: "core_mech"},
					{Name: "Material Science", Days: 3, Category: "core_mech"},
					{Name: "Quantitative & Logical Aptitude", Days: 4, Category: "aptitude"},
				},
				LevelAdvanced: {
					{Name: "IC Engines & Automobiles", Days: 5, Category: "core_mech"},
					{Name: "Power Plant Engineering", Days: 4, Category: "core_mech"},
					{Name: "CAD/CAM/CAE Tools", Days: 5, Category: "core_mech"},
					{Name: "Industrial Engineering & Operations Research", Days: 4, Category: "core_mech"},
					{Name: "Advanced DSA (for IT roles)", Days: 5, Category: "dsa"},
					{Name: "Mock Interviews & HR Preparation", Days: 4, Category: "soft_skills"},
				},
			},
			"EEE": {
				LevelBeginner: {
					{Name: "Basic Electrical Engineering", Days: 5, Category: "core_eee"},
					{Name: "Circuit Theory & Network Analysis", Days: 5, Category: "core_eee"},
					{Name: "Electromagnetic Fields", Days: 4, Category: "core_eee"},
					{Name: "Programming Basics (C / Python)", Days: 4, Category: "programming"},
					{Name: "Basic Aptitude", Days: 4, Category: "aptitude"},
				},
				LevelIntermediate: {
					{Name: "Electrical Machines – DC & AC", Days: 6, Category: "core_eee"},
					{Name: "Power Systems", Days: 5, Category: "core_eee"},
					{Name: "Control Systems", Days: 5, Category: "core_eee"},
					{Name: "Power Electronics", Days: 5, Category: "core_eee"},
					{Name: "Data Structures Basics", Days: 4, Category: "dsa"},
					{Name: "Verbal & Logical Reasoning", Days: 3, Category: "aptitude"},
				},
				LevelAdvanced: {
					{Name: "Switchgear & Protection", Days: 4, Category: "core_eee"},
					{Name: "Instrumentation & Measurements", Days: 4, Category: "core_eee"},
					{Name: "Renewable Energy Systems", Days: 4, Category: "core_eee"},
					{Name: "Advanced DSA (for IT roles)", Days: 5, Category: "dsa"},
					{Name: "Mock Interviews & HR Preparation", Days: 4, Category: "soft_skills"},
				},
			},
			"Civil": {
				LevelBeginner: {
					{Name: "Engineering Mechanics", Days: 5, Category: "core_civil"},
					{Name: "Surveying", Days: 4, Category: "core_civil"},
					{Name: "Building Materials & Construction", Days: 4, Category: "core_civil"},
					{Name: "Programming Basics (C / Python)", Days: 4, Category: "programming"},
					{Name: "Basic Aptitude", Days: 4, Category: "aptitude"},
				},
				LevelIntermediate: {
					{Name: "Structural Analysis", Days: 5, Category: "core_civil"},
					{Name: "Concrete Technology", Days: 4, Category: "core_civil"},
					{Name: "Geotechnical Engineering", Days: 5, Category: "core_civil"},
					{Name: "Fluid Mechanics & Hydraulics", Days: 5, Category: "core_civil"},
					{Name: "Environmental Engineering", Days: 4, Category: "core_civil"},
					{Name: "Quantitative & Logical Aptitude", Days: 4, Category: "aptitude"},
				},
				LevelAdvanced: {
					{Name: "Design of Steel & RCC Structures", Days: 6, Category: "core_civil"},
					{Name: "Transportation Engineering", Days: 4, Category: "core_civil"},
					{Name: "Project Management – CPM/PERT", Days: 4, Category: "core_civil"},
					{Name: "AutoCAD / Revit / STAAD Pro", Days: 5, Category: "core_civil"},
					{Name: "Mock Interviews & HR Preparation", Days: 4, Category: "soft_skills"},
				},
			},
			"IT": {
				LevelBeginner: {
					{Name: "Programming Basics (Python / Java)", Days: 5, Category: "programming"},
					{Name: "Variables, Data Types & Operators", Days: 3, Category: "programming"},
					{Name: "Control Structures & Loops", Days: 3, Category: "programming"},
					{Name: "Functions & Scope", Days: 3, Category: "programming"},
					{Name: "Arrays & Strings", Days: 4, Category: "dsa"},
					{Name: "Linked Lists", Days: 4, Category: "dsa"},
					{Name: "Web Basics – HTML, CSS, JS", Days: 4, Category: "web"},
					{Name: "Basic Aptitude", Days: 4, Category: "aptitude"},
				},
				LevelIntermediate: {
					{Name: "Stacks & Queues", Days: 4, Category: "dsa"},
					{Name: "Recursion & Backtracking", Days: 5, Category: "dsa"},
					{Name: "Trees & Binary Search Trees", Days: 5, Category: "dsa"},
					{Name: "DBMS – SQL, Normalization, Joins", Days: 5, Category: "core_cs"},
					{Name: "OS – Processes, Threads, Scheduling", Days: 5, Category: "core_cs"},
					{Name: "Networking – TCP/IP, OSI Model", Days: 4, Category: "core_cs"},
					{Name: "OOP Concepts (Java / C++)", Days: 4, Category: "programming"},
					{Name: "React / Node.js Basics", Days: 5, Category: "web"},
					{Name: "Verbal & Logical Reasoning", Days: 3, Category: "aptitude"},
				},
				LevelAdvanced: {
					{Name: "Graphs – BFS, DFS, Shortest Path", Days: 6, Category: "dsa"},
					{Name: "Dynamic Programming", Days: 7, Category: "dsa"},
					{Name: "System Design Basics", Days: 5, Category: "system_design"},
					{Name: "Cloud & DevOps Fundamentals", Days: 4, Category: "web"},
					{Name: "Mock Interviews & HR Preparation", Days: 5, Category: "soft_skills"},
					{Name: "Resume Building & Projects", Days: 3, Category: "soft_skills"},
				},
			},
		},
		EmployerWeights: map[EmployerType]map[string]float64{
			// Service-based IT (TCS, Infosys, Wipro, Cognizant).
			EmployerService: {
				"aptitude": 1.4, "core_cs": 1.2, "dsa": 0.9, "programming": 1.1,
				"system_design": 0.5, "soft_skills": 1.3, "web": 0.8,
				"core_ece": 0.6, "core_mech": 0.6, "core_eee": 0.6, "core_civil": 0.6,
			},
			// Product-based (Google, Amazon, Microsoft, Flipkart).
			EmployerProduct: {
				"aptitude": 0.7, "core_cs": 1.2, "dsa": 1.5, "programming": 1.3,
				"system_design": 1.5, "soft_skills": 1.0, "web": 1.1,
				"core_ece": 0.4, "core_mech": 0.4, "core_eee": 0.4, "core_civil": 0.4,
			},
			// Core engineering (L&T, BHEL, ONGC, NTPC, ISRO).
			EmployerCore: {
				"aptitude": 1.0, "core_cs": 0.8, "dsa": 0.6, "programming": 0.7,
				"system_design": 0.3, "soft_skills": 1.0, "web": 0.3,
				"core_ece": 1.6, "core_mech": 1.6, "core_eee": 1.6, "core_civil": 1.6,
			},
		},
		EmployerExtras: map[string][]ExtraTopic{
			"TCS": {
				{Name: "TCS NQT – Quantitative Practice", Days: 3, Category: "aptitude", Level: LevelBeginner},
				{Name: "TCS NQT – Coding Practice", Days: 3, Category: "programming", Level: LevelIntermediate},
			},
			"Infosys": {
				{Name: "InfyTQ Platform Practice", Days: 3, Category: "programming", Level: LevelBeginner},
				{Name: "Infosys SP & DSE – OOP & DSA", Days: 4, Category: "dsa", Level: LevelIntermediate},
			},
			"Wipro": {
				{Name: "Wipro NLTH – Aptitude Practice", Days: 3, Category: "aptitude", Level: LevelBeginner},
				{Name: "Wipro – Coding & Essay Round", Days: 3, Category: "programming", Level: LevelIntermediate},
			},
			"Cognizant": {
				{Name: "CTS GenC – Aptitude & Coding", Days: 3, Category: "aptitude", Level: LevelBeginner},
			},
			"Amazon": {
				{Name: "Amazon OA – Problem Sets", Days: 4, Category: "dsa", Level: LevelAdvanced},
				{Name: "Amazon Leadership Principles", Days: 2, Category: "soft_skills", Level: LevelAdvanced},
			},
			"Google": {
				{Name: "Google Coding Practice – LC Medium/Hard", Days: 5, Category: "dsa", Level: LevelAdvanced},
				{Name: "Google System Design Rounds", Days: 4, Category: "system_design", Level: LevelAdvanced},
			},
			"Microsoft": {
				{Name: "Microsoft OA Practice", Days: 4, Category: "dsa", Level: LevelAdvanced},
				{Name: "Microsoft Design Round Prep", Days: 3, Category: "system_design", Level: LevelAdvanced},
			},
		},
		Milestones: []MilestoneTemplate{
			{AfterLevel: LevelBeginner, Title: "Foundation Complete", Description: "You've built the base! Time to level up."},
			{AfterLevel: LevelIntermediate, Title: "Core Skills Mastered", Description: "Strong mid-level skills. Keep pushing!"},
			{AfterLevel: LevelAdvanced, Title: "Placement Ready", Description: "You've covered all key topics. Start applying!"},
		},
	}
}
