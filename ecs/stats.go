package ecs

// WorldStats is a point-in-time summary of world occupancy.
type WorldStats struct {
	TotalEntityCount int
	TableCount       int
	SingletonCount   int
	TableBreakdown   []TableStats
	SingletonTypes   []string
}

// TableStats describes a single component table.
type TableStats struct {
	ComponentType string
	EntityCount   int
}

// CollectStats gathers entity, table and singleton counts.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		TotalEntityCount: w.entities.Len(),
		TableCount:       len(w.tableOrder),
		SingletonCount:   len(w.singletonOrder),
		TableBreakdown:   make([]TableStats, 0, len(w.tableOrder)),
		SingletonTypes:   make([]string, 0, len(w.singletonOrder)),
	}

	for _, table := range w.tableOrder {
		stats.TableBreakdown = append(stats.TableBreakdown, TableStats{
			ComponentType: table.Type().String(),
			EntityCount:   table.Len(),
		})
	}

	for _, t := range w.singletonOrder {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}

	return stats
}
