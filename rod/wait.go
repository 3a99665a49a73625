package rod

import (
	"errors"

	"github.com/fwojciec/extractcss"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// lifecycleEvents maps load conditions to the Chrome lifecycle event that
// signals them.
var lifecycleEvents = map[extractcss.WaitUntil]proto.PageLifecycleEventName{
	extractcss.WaitLoad:              proto.PageLifecycleEventNameLoad,
	extractcss.WaitDOMContentLoaded:  proto.PageLifecycleEventNameDOMContentLoaded,
	extractcss.WaitNetworkIdle:       proto.PageLifecycleEventNameNetworkIdle,
	extractcss.WaitNetworkAlmostIdle: proto.PageLifecycleEventNameNetworkAlmostIdle,
}

// responseCodeFailure is the navigation error Chrome reports when a 4xx or
// 5xx document has an empty body and it shows its own error page instead.
const responseCodeFailure = "net::ERR_HTTP_RESPONSE_CODE_FAILURE"

func lifecycleEvent(w extractcss.WaitUntil) (proto.PageLifecycleEventName, error) {
	name, ok := lifecycleEvents[w]
	if !ok {
		return "", extractcss.Errorf(extractcss.EINVALID, "unknown wait condition %q", w)
	}
	return name, nil
}

// navigate loads url in page and blocks until the lifecycle event fires for
// that navigation. It returns the status of the main document response, or
// 0 when the URL scheme produces no network response.
//
// Chrome replays lifecycle events of the current document when they are
// enabled, so events are matched on the loader of the new document.
func navigate(page *rod.Page, url string, event proto.PageLifecycleEventName) (int, error) {
	if err := (proto.PageSetLifecycleEventsEnabled{Enabled: true}).Call(page); err != nil {
		return 0, err
	}

	var (
		status   int
		loaderID proto.NetworkLoaderID
		failed   bool
	)
	wait := page.EachEvent(
		func(e *proto.NetworkResponseReceived) bool {
			if loaderID != "" || e.Type != proto.NetworkResourceTypeDocument || e.FrameID != page.FrameID {
				return false
			}
			loaderID = e.LoaderID
			if e.Response != nil {
				status = e.Response.Status
			}
			return failed
		},
		func(e *proto.PageLifecycleEvent) bool {
			return loaderID != "" && e.LoaderID == loaderID && string(e.Name) == string(event)
		},
	)

	navErr := page.Navigate(url)
	if navErr != nil {
		// The error page replaces the document, so only its status is left
		// to report.
		var ne *rod.NavigationError
		if !errors.As(navErr, &ne) || ne.Reason != responseCodeFailure {
			return 0, navErr
		}
		failed = true
	}

	// wait returns early without an error when the page context ends.
	// Callbacks only run inside wait, so failed is seen by every event.
	wait()
	if err := page.GetContext().Err(); err != nil {
		return 0, err
	}
	if failed && status == 0 {
		return 0, navErr
	}

	return status, nil
}
