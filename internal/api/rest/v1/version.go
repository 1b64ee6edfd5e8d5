package v1

// BasePath is the route prefix of the tonban API
const BasePath = "/tonban"
