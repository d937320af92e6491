package build

import "time"

// ProgressReporter receives build lifecycle callbacks. Implementations must
// tolerate being called from a single goroutine only; the pipeline is
// strictly sequential.
type ProgressReporter interface {
	OnDiscoveryComplete(docFiles int)
	OnScanStart(totalDocs int)
	OnDocumentScanned(name string)
	OnFetchStart(remoteLanguages int)
	OnFetchComplete()
	OnComplete(stats *Stats)
}

// Stats summarizes one completed build.
type Stats struct {
	Documents       int
	Snippets        int
	DisplayRequests int
	Duration        time.Duration
}

// NopProgress is a ProgressReporter that does nothing. Used when no reporter
// is supplied, and by watch rebuilds.
type NopProgress struct{}

func (NopProgress) OnDiscoveryComplete(int)  {}
func (NopProgress) OnScanStart(int)          {}
func (NopProgress) OnDocumentScanned(string) {}
func (NopProgress) OnFetchStart(int)         {}
func (NopProgress) OnFetchComplete()         {}
func (NopProgress) OnComplete(*Stats)        {}
