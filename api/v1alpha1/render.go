package v1alpha1

import "net/http"

func (e Error) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (e EstimationResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (p ProfileList) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (w WaitlistResponse) Render(rw http.ResponseWriter, r *http.Request) error {
	return nil
}

func (h Health) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (i Info) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
