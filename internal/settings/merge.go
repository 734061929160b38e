package settings

// DeepMerge returns base overlaid with override. For a key present in both,
// two objects merge recursively; any other override value replaces the base
// value, lists included. Base keys keep their position and new keys from
// override are appended in override order. Neither input is modified.
func DeepMerge(base, override *Document) *Document {
	out := base.Clone()
	if override == nil {
		return out
	}
	for _, k := range override.keys {
		ov := override.values[k]
		if od, ok := ov.(*Document); ok {
			if bd, ok := out.values[k].(*Document); ok {
				out.set(k, DeepMerge(bd, od))
				continue
			}
		}
		out.set(k, cloneValue(ov))
	}
	return out
}
