package mlmd

// FilterURIsByType selects the storage URIs of artifacts whose type has
// the given name. Every type ID carrying the name counts. Artifact order
// is preserved; artifacts with an empty URI are skipped. An unknown type
// name yields an empty result.
func FilterURIsByType(types []ArtifactType, artifacts []Artifact, typeName string) []string {
	ids := make(map[int64]bool)
	for _, t := range types {
		if t.Name == typeName {
			ids[t.ID] = true
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var uris []string
	for _, a := range artifacts {
		if ids[a.TypeID] && a.URI != "" {
			uris = append(uris, a.URI)
		}
	}
	return uris
}
