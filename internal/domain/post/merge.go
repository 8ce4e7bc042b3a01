package post

import (
	"strconv"
	"strings"

	"postdeck/internal/storage"
)

// MergeOne overlays a local patch onto the canonical post. Fields set in the
// patch replace canonical fields of the same name, absent fields keep their
// canonical values. The id is never patched.
func MergeOne(canonical Post, patch *Patch) Post {
	if patch == nil {
		return canonical
	}

	merged := canonical
	if patch.UserID != nil {
		merged.UserID = *patch.UserID
	}
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Body != nil {
		merged.Body = *patch.Body
	}

	return merged
}

// MergeAll applies MergeOne per element using an id-indexed overlay map.
func MergeAll(canonical []Post, overlays map[int]Patch) []Post {
	if len(overlays) == 0 {
		return canonical
	}

	merged := make([]Post, len(canonical))
	for i, p := range canonical {
		if patch, ok := overlays[p.ID]; ok {
			merged[i] = MergeOne(p, &patch)
		} else {
			merged[i] = p
		}
	}

	return merged
}

// SaveOverlay persists a local edit for the given post id.
func SaveOverlay(store storage.Store, id int, overlay Overlay) {
	store.Set(storage.EditedPostKey(id), overlay)
}

// LoadOverlay reads the local edit for a post id, if any.
func LoadOverlay(store storage.Store, id int) (Overlay, bool) {
	var overlay Overlay
	ok := store.Get(storage.EditedPostKey(id), &overlay)
	return overlay, ok
}

// LoadOverlays reads every stored edit, indexed by post id.
func LoadOverlays(store storage.Store) map[int]Patch {
	overlays := make(map[int]Patch)
	for _, id := range EditedIDs(store) {
		if overlay, ok := LoadOverlay(store, id); ok {
			overlays[id] = overlay.Data
		}
	}
	return overlays
}

// EditedIDs enumerates the ids of all posts with a stored edit.
func EditedIDs(store storage.Store) []int {
	keys := store.KeysWithPrefix(storage.EditedPostPrefix)

	ids := make([]int, 0, len(keys))
	for _, key := range keys {
		raw := strings.TrimPrefix(key, storage.EditedPostPrefix)
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// IsEdited reports whether the post has a stored local edit.
func IsEdited(store storage.Store, id int) bool {
	var overlay Overlay
	return store.Get(storage.EditedPostKey(id), &overlay)
}

// RemoveOverlays deletes every stored edit, called on logout.
func RemoveOverlays(store storage.Store) {
	for _, key := range store.KeysWithPrefix(storage.EditedPostPrefix) {
		store.Remove(key)
	}
}
