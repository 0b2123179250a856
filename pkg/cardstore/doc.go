/*
Package cardstore is a client-side cache of a user's cards kept in sync
with the cardlink API.

The store owns an ordered collection of cards, unique by id, plus the
request status flags a UI renders from:

	store := cardstore.New("http://localhost:3000", token)

	cards, err := store.List(ctx)
	created, err := store.Create(ctx, cardstore.Draft{Name: "Ada"})
	_, err = store.Update(ctx, created.ID, draft)
	_, err = store.Delete(ctx, created.ID)
	store.Reset()

Every operation transitions the status through pending and then either
fulfilled (the collection is reconciled with the server's response) or
rejected (the server message is captured and the collection is left
untouched). Flags stay where they land until Reset is called.

Operations are independent HTTP calls with no retries, deduplication or
cancellation beyond the caller's context; concurrent operations may
race and the last response to arrive wins in local state.
*/
package cardstore
