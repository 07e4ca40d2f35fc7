// Package i18n holds the English and Chinese string tables used to label
// categories and write result interpretations.
//
// Lookups never fail: an unknown locale falls back to English and an unknown
// key is returned unchanged. Templates are fmt verbs over pre-formatted
// strings; numbers are rendered with Fixed so every locale shows the same
// digits.
package i18n
