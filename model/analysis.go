package model

// Change is one release event inside a FrequentChangeEntry, in
// chronological order.
type Change struct {
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
}

// FrequentChangeEntry flags a module that changed at least a threshold
// number of times within one period (a quarter label or a year label).
// Entries are derived on demand and never persisted.
type FrequentChangeEntry struct {
	ModuleName  string   `json:"module_name"`
	Period      string   `json:"period"`
	ChangeCount int      `json:"change_count"`
	Changes     []Change `json:"changes"`
}

// ModuleCount pairs a module name with the number of records attributed
// to it.
type ModuleCount struct {
	ModuleName string `json:"module_name"`
	Count      int    `json:"count"`
}

// Summary holds aggregate statistics over a record collection.
type Summary struct {
	TotalReleases int              `json:"total_releases"`
	TotalModules  int              `json:"total_modules"`
	TotalQuarters int              `json:"total_quarters"`
	NewReleases   int              `json:"new_releases"`
	Categories    map[Category]int `json:"categories"`
	Quarters      map[string]int   `json:"quarters"`
	TopModules    []ModuleCount    `json:"modules"`
}
