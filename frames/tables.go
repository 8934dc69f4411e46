package frames

import "slices"

// stagingTables maps each warehouse group to its staging tables in load
// order.
var stagingTables = map[string][]string{
	"subfolder1": {
		"01_stg_table",
		"02_stg_table",
		"03_stg_table",
		"04_stg_table",
	},
	"subfolder2": {
		"01_stg_table",
		"02_stg_table",
		"03_stg_table",
		"04_stg_table",
		"05_stg_table",
		"06_stg_table",
	},
}

// StagingTables returns the staging tables for a warehouse group, or nil for
// an unknown group.
func StagingTables(group string) []string {
	return slices.Clone(stagingTables[group])
}

// Groups returns the sorted warehouse group names.
func Groups() []string {
	groups := make([]string, 0, len(stagingTables))
	for group := range stagingTables {
		groups = append(groups, group)
	}
	slices.Sort(groups)
	return groups
}
