// Package locator resolves a dataset location to the metadata document that
// describes it.
//
// A dataset is either a directory or a single file. Its metadata document is
// found through one of three naming conventions, checked in this order:
//
//  1. Direct: the path is itself a metadata document (its name ends in a
//     recognized suffix such as ".yaml" or ".json.gz").
//  2. Directory: the path is a directory holding "agdc-metadata.<suffix>".
//  3. Sibling: the path is a data file "F" next to "F.agdc-md.<suffix>".
//
// Recognized suffixes are probed in the fixed order of
// agdcmeta.MetadataSuffixes. Suffix matching ignores letter case, so
// "scene.agdc-md.YAML" satisfies the "yaml" candidate.
//
// # Usage
//
//	loc := locator.NewLocator()
//	mdPath, err := loc.Resolve("/data/LS8_scene")
//	switch {
//	case errors.Is(err, agdcmeta.ErrDatasetNotFound):
//	    // nothing at that path
//	case errors.Is(err, agdcmeta.ErrMetadataNotFound):
//	    // dataset exists, metadata does not
//	}
//
// Resolution only stats and lists paths. It never opens, creates or
// modifies files, and a Locator is safe for concurrent use.
package locator
