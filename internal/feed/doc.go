// Package feed fetches the friends list that populates the roster.
//
// # Overview
//
// The feed is a small read-only JSON endpoint that lists friendship
// relations, each embedding the target user's public profile. This package
// decodes that payload and maps it to roster.Entity values. Nothing here knows
// about grouping, sorting, or rendering.
//
// # Sources
//
// Two sources implement Fetcher:
//
//   - Client: GET /api/friends over HTTP
//   - File: the same payload read from disk, for offline use and demos
//
// Create a client from the feed_url configuration value:
//
//	client, err := feed.NewClient("127.0.0.1:7488")
//	if err != nil {
//		return err
//	}
//	entities, err := client.FetchFriends(ctx)
//
// # Request Handling
//
// Every request:
//   - Uses ctx for cancellation
//   - Sets Accept: application/json and User-Agent: roster/0.1
//   - Carries a fresh X-Request-Id (a random UUID) so server logs can be
//     correlated with the roster log file
//   - Times out after 5 seconds
//
// # Payload
//
//	{"friends": [
//	  {"target_id": 2, "relation_type": "friend", "mutual": true,
//	   "target": {"id": 2, "username": "peppy", "is_online": true,
//	              "last_visit": "2025-02-03T04:05:06Z", "country_code": "AU",
//	              "statistics": {"global_rank": 1234}}}
//	]}
//
// last_visit and statistics.global_rank may be null. A null rank maps to an
// unranked entity, which sorts last under rank ordering. A relation without a
// target maps to an entity carrying only its ID; it fails validation when
// its panel is built, which fails that rebuild and keeps the previous
// content on screen.
//
// # Error Handling
//
// Errors are wrapped with fmt.Errorf:
//   - "execute request: dial tcp: connection refused"
//   - "api /api/friends returned status 500"
//   - "decode response: unexpected end of JSON input"
//
// Retries and backoff are the poller's concern, not the client's.
package feed
