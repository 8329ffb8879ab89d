// Package domain models disaster alerts aggregated from public event feeds.
//
// # Data Sources
//
// Alerts originate from two unauthenticated public endpoints: the NASA EONET
// v3 events API (satellite-observed natural events: wildfires, storms, floods,
// volcanoes, ...) and the USGS FDSN event query API (seismic events). Each
// provider adapter normalizes its raw schema into the common [Alert] shape;
// this package holds that shape plus the pure geo/ranking/formatting logic
// shared by both.
//
// # Severity
//
// The four-level scale (low, medium, high, critical) is a project-specific
// simplification for user-facing ranking and display:
//
//	EONET:  classified by provider category — Earthquakes/Volcanoes critical,
//	        Severe Storms/Floods high, Wildfires/Landslides medium, else low.
//	USGS:   classified by magnitude — ≥7.0 critical, ≥6.0 high, ≥4.5 medium,
//	        else low (inclusive lower bounds). See [SeverityFromMagnitude].
//
// # Distance
//
// Distances are great-circle kilometres (haversine, Earth radius 6371 km)
// from an observer point. Ranking rounds the recomputed [Alert.Distance] to
// the nearest whole kilometre before the radius comparison and the sort
// tie-break, so an alert at 100.4 km stays inside a 100 km radius. Display
// formatting is handled separately; see [FormatDistance].
//
// # ID Generation
//
// Alert IDs are the provider's own event IDs namespaced with a source prefix
// ("eonet-", "usgs-"). Provider IDs are not globally unique across feeds, so
// the prefix keeps downstream consumers that key by ID collision-free.
//
// # Lifecycle
//
// An Alert is built fresh on every fetch cycle and discarded after being
// returned to the caller. Nothing in this package caches, deduplicates, or
// persists alerts; every aggregation is a pure function of the observer
// location, the radius, and the provider responses.
package domain
