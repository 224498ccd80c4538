// Package sales is the Sales feature: the types shared with the sales API,
// the sales resource client, and the dashboard loader that turns fetched
// snapshots into the values the sales pages render.
package sales
