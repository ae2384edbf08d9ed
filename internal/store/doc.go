// Package store persists downloaded images to the target directory.
//
// The directory is accessed through a gocloud.dev blob bucket: fileblob in
// the CLI, memblob in tests. fileblob gives atomic writes (temp file plus
// rename) so an interrupted or failed save never leaves a truncated image
// on disk.
//
// # Usage
//
//	st, err := store.Open("Fetched_Images")
//	defer st.Close()
//
//	path, err := st.Save(ctx, "photo.jpg", data)
//	ok, err := st.Exists(ctx, "photo.jpg")
//	names, err := st.List(ctx)
package store
