package internal

// Version is the current version of aistriu
const Version = "0.3.1"
