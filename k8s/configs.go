package k8s

var deployment string = `---
apiVersion: apps/v1
kind: Deployment
metadata:
  name: {{ .App }}
  namespace: {{ .Namespace }}
  labels:
    app: {{ .App }}
spec:
  replicas: {{ .Replicas }}
  selector:
    matchLabels:
      app: {{ .App }}
  strategy: {}
  template:
    metadata:
      creationTimestamp: null
      labels:
        app: {{ .App }}
    spec:
      containers:
        - name: {{ .App }}
          image: {{ .Image }}:{{ .Version }}
          imagePullPolicy: IfNotPresent
          args: ["serve", "--port", {{ .Port | toString | quote }}, "--engine", {{ .Engine | default "nethttp" | quote }}]
          ports:
            - containerPort: {{ .Port }}
              protocol: TCP
          readinessProbe:
            httpGet:
              path: /
              port: {{ .Port }}
`

var service string = `---
apiVersion: v1
kind: Service
metadata:
  name: {{ .App }}
  namespace: {{ .Namespace }}
spec:
  type: ClusterIP
  ports:
  - name: http
    port: {{ .ServicePort | default .Port }}
    targetPort: {{ .Port }}
    protocol: TCP
  selector:
    app: {{ .App }}
`
