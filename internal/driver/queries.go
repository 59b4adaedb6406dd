package driver

var IndexQueries = []string{
	"CREATE INDEX ON :Entity(uuid);",
	"CREATE INDEX ON :Entity(name);",
	"CREATE INDEX ON :Entity(group_id);",
}

const (
	// Entities are keyed by name within a group; the uuid is kept from the
	// first save.
	SaveEntityQuery = `
		MERGE (n:Entity {name: $name, group_id: $group_id})
		ON CREATE SET n.uuid = $uuid, n.created_at = $created_at
		SET n.color = $color
		RETURN n.uuid AS uuid
	`

	SaveRelationQuery = `
		MATCH (source:Entity {name: $source, group_id: $group_id})
		MATCH (target:Entity {name: $target, group_id: $group_id})
		MERGE (source)-[e:RELATES_TO {label: $label}]->(target)
		ON CREATE SET e.uuid = $uuid, e.created_at = $created_at
		RETURN e.uuid AS uuid
	`

	GetGroupGraphQuery = `
		MATCH (source:Entity {group_id: $group_id})-[e:RELATES_TO]->(target:Entity)
		RETURN source.name AS source, source.color AS source_color,
			target.name AS target, target.color AS target_color, e.label AS label
		ORDER BY source, label, target
	`

	DeleteGroupQuery = `
		MATCH (n:Entity {group_id: $group_id})
		DETACH DELETE n
	`
)
