// Package document implements the progress indicator's host surface on top
// of an HTML node tree parsed by golang.org/x/net/html.
//
// # Usage
//
//	doc, err := document.Parse(file)
//	if err != nil {
//	    return err
//	}
//	ctrl := progress.NewController(progress.ControllerDeps{Surface: doc})
//	ctrl.Start()
//	...
//	ctrl.Complete()
//	doc.Render(os.Stdout)
//
// A Document is safe for concurrent use: the controller mutates it from its
// timer goroutine while callers render it.
package document
